package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/molembed/molembed/internal/chainplan"
	"github.com/molembed/molembed/internal/diagram"
	"github.com/molembed/molembed/internal/diagram/ggdraw"
	"github.com/molembed/molembed/internal/widgets"
)

// fragmentRequest is the JSON body for the /api/fragment endpoint.
type fragmentRequest struct {
	Type string `json:"type"` // "structure" or "smiles"

	// Structure fields. BCIFData is base64-encoded.
	URL        string                `json:"url,omitempty"`
	BCIFData   string                `json:"bcif_data,omitempty"`
	PDBData    string                `json:"pdb_data,omitempty"`
	Ligand     string                `json:"ligand,omitempty"`
	Components []chainplan.Component `json:"components,omitempty"`
	Background string                `json:"background,omitempty"`
	Controls   bool                  `json:"show_controls,omitempty"`

	// SMILES fields.
	SMILES        string `json:"smiles,omitempty"`
	Title         string `json:"title,omitempty"`
	Theme         string `json:"theme,omitempty"`
	ShowHydrogens bool   `json:"show_hydrogens,omitempty"`

	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

// fragmentResponse is the JSON response for the /api/fragment endpoint.
type fragmentResponse struct {
	HTML string `json:"html"`
}

func (s *Server) handleFragment(w http.ResponseWriter, r *http.Request) {
	var req fragmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	var html string
	var err error
	switch req.Type {
	case "smiles":
		view := widgets.SmilesView{
			SMILES:        req.SMILES,
			Title:         req.Title,
			Theme:         diagram.ParseTheme(req.Theme),
			ShowHydrogens: req.ShowHydrogens,
			Width:         req.Width,
			Height:        req.Height,
		}
		html, err = view.HTML()
	case "structure", "":
		var bcif []byte
		if req.BCIFData != "" {
			bcif, err = base64.StdEncoding.DecodeString(req.BCIFData)
			if err != nil {
				http.Error(w, `{"error":"bcif_data is not valid base64"}`, http.StatusBadRequest)
				return
			}
		}
		view := widgets.StructureView{
			BCIFData:     bcif,
			PDBData:      req.PDBData,
			URL:          req.URL,
			LigandName:   req.Ligand,
			Components:   req.Components,
			Width:        req.Width,
			Height:       req.Height,
			Background:   req.Background,
			ShowControls: req.Controls,
		}
		html, err = view.HTML()
	default:
		http.Error(w, `{"error":"unknown fragment type"}`, http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, `{"error":"rendering failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(fragmentResponse{HTML: html})
}

// diagramRequest is the JSON body for the /api/diagram endpoint. The
// caller supplies an already-laid-out molecule tree; the server rasterizes
// it to PNG.
type diagramRequest struct {
	Tree              diagram.Tree `json:"tree"`
	Theme             string       `json:"theme,omitempty"`
	Width             int          `json:"width,omitempty"`
	Height            int          `json:"height,omitempty"`
	ExplicitHydrogens bool         `json:"explicit_hydrogens,omitempty"`
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	var req diagramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	if len(req.Tree.Atoms) == 0 {
		http.Error(w, `{"error":"tree has no atoms"}`, http.StatusBadRequest)
		return
	}

	drawer := ggdraw.New(diagram.Options{
		Width:             req.Width,
		Height:            req.Height,
		ExplicitHydrogens: req.ExplicitHydrogens,
	})

	var buf bytes.Buffer
	if err := drawer.Draw(&req.Tree, &buf, diagram.ParseTheme(req.Theme)); err != nil {
		http.Error(w, `{"error":"rendering failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

// upgrader upgrades /ws/events connections. Origin checking is left to
// the CORS middleware in front of the route.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// handleEvents streams viewer lifecycle events to the client as JSON
// messages until the client disconnects.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	events, cancel := s.events.Subscribe()
	defer cancel()

	// Drain client frames so close frames are processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(ev); err != nil {
				log.Printf("ws write: %v", err)
				return
			}
		case <-done:
			return
		case <-r.Context().Done():
			return
		}
	}
}
