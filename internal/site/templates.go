package site

// pageTemplate is the Go html/template for each gallery page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} — {{.ProjectName}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body>
  <nav class="sidebar" id="sidebar">
    <div class="sidebar-header">
      <h2 class="project-title">{{.ProjectName}}</h2>
      <input type="text" id="search-input" placeholder="Search structures..." autocomplete="off">
    </div>
    <div class="sidebar-tree" id="sidebar-tree">
      {{.TreeHTML}}
    </div>
  </nav>
  <div class="sidebar-overlay" id="sidebar-overlay"></div>
  <main class="content">
    <div class="top-bar">
      <button class="menu-toggle" id="menu-toggle" aria-label="Toggle sidebar">
        <svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/>
        </svg>
      </button>
      <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">
        <svg class="sun-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <circle cx="12" cy="12" r="5"/><line x1="12" y1="1" x2="12" y2="3"/><line x1="12" y1="21" x2="12" y2="23"/>
        </svg>
        <svg class="moon-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/>
        </svg>
      </button>
    </div>
    <div class="search-results" id="search-results"></div>
    <article class="page-content">
      {{.Content}}
    </article>
  </main>
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>`

// cssContent is the CSS for the gallery site.
const cssContent = `:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --bg-sidebar: #f1f3f5;
  --text: #212529;
  --text-secondary: #495057;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #2563eb;
  --accent-light: #e7f0ff;
  --link: #2563eb;
  --sidebar-width: 280px;
  --content-max-width: 960px;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
}

[data-theme="dark"] {
  --bg: #1e293b;
  --bg-secondary: #243449;
  --bg-sidebar: #182334;
  --text: #f8fafc;
  --text-secondary: #cbd5e1;
  --text-muted: #64748b;
  --border: #334155;
  --accent: #60a5fa;
  --accent-light: #1e3a5f;
  --link: #60a5fa;
  --shadow: 0 1px 3px rgba(0,0,0,0.3);
}

* { box-sizing: border-box; }
body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  background: var(--bg);
  color: var(--text);
  display: flex;
}

.sidebar {
  position: fixed;
  top: 0; left: 0; bottom: 0;
  width: var(--sidebar-width);
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  overflow-y: auto;
  z-index: 20;
}
.sidebar-header { padding: 16px; border-bottom: 1px solid var(--border); }
.project-title { margin: 0 0 12px; font-size: 1.1rem; }
#search-input {
  width: 100%;
  padding: 6px 10px;
  border: 1px solid var(--border);
  border-radius: 6px;
  background: var(--bg);
  color: var(--text);
}
.sidebar-tree { padding: 8px 4px; font-size: 0.9rem; }
.sidebar-tree ul { list-style: none; margin: 0; padding-left: 14px; }
.sidebar-tree a { color: var(--text-secondary); text-decoration: none; display: block; padding: 3px 6px; border-radius: 4px; }
.sidebar-tree a:hover { background: var(--accent-light); }
.sidebar-tree a.active { background: var(--accent-light); color: var(--accent); font-weight: 600; }
.dir-toggle { cursor: pointer; font-weight: 600; color: var(--text-secondary); display: block; padding: 3px 6px; }
.dir > ul { display: none; }
.dir.expanded > ul { display: block; }

.content {
  margin-left: var(--sidebar-width);
  flex: 1;
  min-width: 0;
}
.top-bar {
  display: flex;
  align-items: center;
  gap: 12px;
  padding: 10px 20px;
  border-bottom: 1px solid var(--border);
  background: var(--bg-secondary);
}
.menu-toggle, .theme-toggle {
  background: none;
  border: none;
  color: var(--text-secondary);
  cursor: pointer;
  padding: 4px;
}
.menu-toggle { display: none; }
.theme-toggle { margin-left: auto; }
[data-theme="dark"] .sun-icon { display: none; }
:root:not([data-theme="dark"]) .moon-icon { display: none; }
[data-theme="light"] .moon-icon { display: none; }

.page-content {
  max-width: var(--content-max-width);
  margin: 0 auto;
  padding: 24px;
}
.page-content pre { background: var(--bg-secondary); padding: 12px; border-radius: 6px; overflow-x: auto; }
.page-content a { color: var(--link); }

.card-grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(220px, 1fr));
  gap: 14px;
  margin-top: 20px;
}
.card {
  display: flex;
  flex-direction: column;
  gap: 6px;
  padding: 16px;
  border: 1px solid var(--border);
  border-radius: 8px;
  text-decoration: none;
  color: var(--text);
  box-shadow: var(--shadow);
}
.card:hover { border-color: var(--accent); }
.card-title { font-weight: 600; }
.card-kind { font-size: 0.75rem; color: var(--text-muted); text-transform: uppercase; }

.search-results { max-width: var(--content-max-width); margin: 0 auto; padding: 0 24px; }
.search-result { padding: 10px 0; border-bottom: 1px solid var(--border); }
.search-result a { color: var(--link); font-weight: 600; text-decoration: none; }
.search-result .kind { margin-left: 8px; font-size: 0.75rem; color: var(--text-muted); text-transform: uppercase; }

.sidebar-overlay { display: none; }

@media (max-width: 800px) {
  .sidebar { transform: translateX(-100%); transition: transform 0.2s; }
  .sidebar.open { transform: translateX(0); }
  .sidebar-overlay.visible {
    display: block;
    position: fixed;
    inset: 0;
    background: rgba(0,0,0,0.4);
    z-index: 10;
  }
  .content { margin-left: 0; }
  .menu-toggle { display: block; }
}`

// jsContent drives the sidebar, theme toggle, and structure search.
const jsContent = `(function () {
  // Theme persistence.
  var stored = localStorage.getItem('molembed-theme');
  if (stored) document.documentElement.setAttribute('data-theme', stored);

  var themeToggle = document.getElementById('theme-toggle');
  if (themeToggle) {
    themeToggle.addEventListener('click', function () {
      var current = document.documentElement.getAttribute('data-theme') === 'dark' ? 'light' : 'dark';
      document.documentElement.setAttribute('data-theme', current);
      localStorage.setItem('molembed-theme', current);
    });
  }

  // Mobile sidebar.
  var sidebar = document.getElementById('sidebar');
  var overlay = document.getElementById('sidebar-overlay');
  var menuToggle = document.getElementById('menu-toggle');
  if (menuToggle) {
    menuToggle.addEventListener('click', function () {
      sidebar.classList.toggle('open');
      overlay.classList.toggle('visible');
    });
  }
  if (overlay) {
    overlay.addEventListener('click', function () {
      sidebar.classList.remove('open');
      overlay.classList.remove('visible');
    });
  }

  // Directory expand/collapse.
  document.querySelectorAll('.dir-toggle').forEach(function (el) {
    el.addEventListener('click', function () {
      el.parentElement.classList.toggle('expanded');
    });
  });

  // Structure search over search-index.json.
  var searchInput = document.getElementById('search-input');
  var resultsEl = document.getElementById('search-results');
  var index = null;
  var base = document.querySelector('script[src$="script.js"]').getAttribute('src').replace(/script\.js$/, '');

  function loadIndex() {
    if (index) return Promise.resolve(index);
    return fetch(base + 'search-index.json')
      .then(function (r) { return r.json(); })
      .then(function (data) { index = data; return index; });
  }

  function renderResults(matches) {
    resultsEl.innerHTML = '';
    matches.slice(0, 20).forEach(function (m) {
      var div = document.createElement('div');
      div.className = 'search-result';
      var a = document.createElement('a');
      a.href = base + m.path;
      a.textContent = m.title;
      var kind = document.createElement('span');
      kind.className = 'kind';
      kind.textContent = m.kind;
      div.appendChild(a);
      div.appendChild(kind);
      resultsEl.appendChild(div);
    });
  }

  if (searchInput) {
    searchInput.addEventListener('input', function () {
      var q = searchInput.value.trim().toLowerCase();
      if (!q) { resultsEl.innerHTML = ''; return; }
      loadIndex().then(function (entries) {
        renderResults(entries.filter(function (e) {
          return e.title.toLowerCase().indexOf(q) !== -1 ||
            (e.summary || '').toLowerCase().indexOf(q) !== -1 ||
            e.kind.indexOf(q) !== -1;
        }));
      });
    });
  }
})();`
