package widgets

import "html/template"

// structureTemplate is the viewer container fragment. The data attributes
// form the declarative contract the bootstrap core reads; the loading div
// is the placeholder the core hides or replaces with an error message.
const structureTemplate = `<style>
#{{.ElementID}}-container {
    width: {{.Width}}px;
    height: {{.Height}}px;
    position: relative;
    border: 1px solid #dbe3ec;
    border-radius: 12px;
    overflow: hidden;
    background: {{.Background}};
}
#{{.ElementID}} {
    width: 100%;
    height: 100%;
}
#{{.ElementID}}-container .structure-loading {
    position: absolute;
    top: 50%;
    left: 50%;
    transform: translate(-50%, -50%);
    color: #6b7280;
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    font-size: 12px;
    letter-spacing: 0.02em;
}
</style>
<div id="{{.ElementID}}-container" data-molembed-structure="1" data-url="{{.URL}}" data-format="{{.Format}}" data-ligand="{{.Ligand}}" data-controls="{{.Controls}}" data-color-plan="{{.ColorPlan}}" data-background="{{.BackgroundAttr}}">
    <div id="{{.ElementID}}" data-molembed-viewer="1"></div>
    <div class="structure-loading" id="{{.ElementID}}-loading" data-molembed-loading="1">Loading structure...</div>
</div>
`

// structurePlaceholderTemplate renders when a view has no data at all.
const structurePlaceholderTemplate = `<div style="width: {{.Width}}px; height: {{.Height}}px; display: flex;
            align-items: center; justify-content: center; background: #f3f4f6;
            border: 1px solid #e5e7eb; border-radius: 8px; color: #6b7280;">
    <p>No structure data provided</p>
</div>
`

// smilesTemplate is the 2D diagram element fragment.
const smilesTemplate = `<style>
#{{.ElementID}}-container {
    display: inline-block;
    background: {{.Background}};
    border: 1px solid {{.Border}};
    border-radius: 8px;
    padding: 12px;
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
}
#{{.ElementID}}-container .smiles-title {
    font-size: 14px;
    font-weight: 600;
    color: {{.TitleColor}};
    margin-bottom: 8px;
    text-align: center;
}
#{{.ElementID}} {
    display: block;
    width: {{.Width}}px;
    height: {{.Height}}px;
}
#{{.ElementID}}-error {
    display: none;
    color: #ef4444;
    font-size: 12px;
    text-align: center;
    padding: 8px;
}
#{{.ElementID}}-smiles {
    font-size: 11px;
    color: {{.EchoColor}};
    font-family: 'Consolas', 'Monaco', monospace;
    margin-top: 8px;
    text-align: center;
    word-break: break-all;
    max-width: {{.Width}}px;
}
</style>
<div id="{{.ElementID}}-container">
{{if .Title}}    <div class="smiles-title">{{.Title}}</div>
{{end}}    <div id="{{.ElementID}}" data-molembed-smiles="1" data-smiles="{{.SMILES}}" data-theme="{{.Theme}}" data-explicit-hydrogens="{{.ExplicitHydrogens}}" data-width="{{.Width}}" data-height="{{.Height}}"></div>
    <div id="{{.ElementID}}-error"></div>
    <div id="{{.ElementID}}-smiles">{{.SMILES}}</div>
</div>
`

// smilesGridTemplate lays out multiple diagram fragments.
const smilesGridTemplate = `<style>
#{{.GridID}} {
    display: grid;
    grid-template-columns: repeat({{.Columns}}, 1fr);
    gap: 16px;
    margin: 16px 0;
}
#{{.GridID}} .smiles-grid-item {
    display: flex;
    justify-content: center;
}
</style>
<div id="{{.GridID}}">
{{range .Items}}    <div class="smiles-grid-item">{{.}}</div>
{{end}}</div>
`

var (
	structureTmpl            = template.Must(template.New("structure").Parse(structureTemplate))
	structurePlaceholderTmpl = template.Must(template.New("structure-placeholder").Parse(structurePlaceholderTemplate))
	smilesTmpl               = template.Must(template.New("smiles").Parse(smilesTemplate))
	smilesGridTmpl           = template.Must(template.New("smiles-grid").Parse(smilesGridTemplate))
)
