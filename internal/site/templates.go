package site

// layoutTemplate wraps every page. "content" is bound per page by the theme.
const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="ko">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{if .Title}}{{.Title}} | {{end}}{{.Site.Title}}</title>
  <meta name="description" content="{{if .Description}}{{.Description}}{{else}}{{.Site.Description}}{{end}}">
  <link rel="stylesheet" href="{{.CSS}}">
</head>
<body class="page-{{.Page}}"{{if .LiveReload}} data-live-reload="{{.LiveReload}}"{{end}}>
  <nav class="navbar">
    <div class="nav-container">
      <div class="nav-links">
        {{- range .Nav}}
        <a class="nav-btn{{if .Active}} active{{end}}" href="{{.Href}}">{{.Label}}</a>
        {{- end}}
      </div>
    </div>
  </nav>
  <main class="content-container">
    {{template "content" .}}
  </main>
  <footer class="footer">
    <div class="footer-content"><p>{{.Site.Copyright}}</p></div>
  </footer>
  <button class="scroll-top-btn" id="scroll-top" aria-label="Back to top">&#8593;</button>
  <script src="{{.JS}}"></script>
</body>
</html>
{{end}}`

// pageTemplates are the per-page bodies. Each {{.Mount "id"}} declares a
// container the renderers may fill.
const pageTemplates = `
{{define "home"}}<section class="static-page home">{{.Mount "page-content"}}</section>{{end}}

{{define "introduction"}}<section class="static-page introduction">{{.Mount "page-content"}}</section>{{end}}

{{define "world"}}<section class="static-page world">{{.Mount "page-content"}}</section>{{end}}

{{define "character"}}<h1 class="page-title">Character</h1>
<div id="character-grid" class="character-grid">{{.Mount "character-grid"}}</div>{{end}}

{{define "archive"}}<h1 class="page-title">Archive</h1>
<div id="archive-grid" class="archive-grid">{{.Mount "archive-grid"}}</div>{{end}}

{{define "blog"}}<h1 class="page-title">Blog</h1>
<div class="blog-layout">
  <aside class="blog-sidebar"><div id="category-list" class="category-list">{{.Mount "category-list"}}</div></aside>
  <div id="blog-list" class="blog-list" data-category="{{.Category}}">{{.Mount "blog-list"}}</div>
</div>{{end}}

{{define "character-detail"}}<div class="character-detail-content">{{.Mount "detail"}}</div>{{end}}

{{define "archive-detail"}}<div class="archive-detail-content">{{.Mount "detail"}}</div>{{end}}

{{define "blog-detail"}}<div class="archive-detail-content blog-detail-content">{{.Mount "detail"}}</div>{{end}}

{{define "unavailable"}}<section class="unavailable">
  <h1>콘텐츠를 불러올 수 없습니다</h1>
  <p>{{.Message}}</p>
</section>{{end}}
`

// fragmentTemplates render list items, detail views and the category list.
const fragmentTemplates = `
{{define "item-character"}}<a class="character-item" href="{{.Href}}" data-id="{{.R.ID}}">
  <img src="{{.R.Image}}" alt="{{.R.Name}}" loading="lazy">
  <div class="character-item-info"><span class="character-item-name">{{.R.Name}}</span><span class="character-item-title">{{.R.Title}}</span></div>
</a>{{end}}

{{define "item-archive"}}<a class="archive-item" href="{{.Href}}" data-id="{{.R.ID}}">
  <div class="archive-image">{{if .R.Image}}<img src="{{.R.Image}}" alt="{{.R.Title}}" loading="lazy">{{else}}<div class="archive-no-image">No Image</div>{{end}}</div>
  <div class="archive-info">
    <span class="archive-date">{{.R.Date}}</span>
    <h3 class="archive-title">{{.R.Title}}</h3>
    {{- if .R.Type}}<span class="archive-type">{{.R.Type}}</span>{{end}}
  </div>
</a>{{end}}

{{define "item-blog"}}<a class="blog-item" href="{{.Href}}" data-id="{{.R.ID}}" data-category="{{.R.Category}}">
  <div class="blog-list-content">
    <h3 class="blog-list-title">{{.R.Title}}</h3>
    <div class="blog-list-meta">
      <span class="blog-list-category">{{.R.Category}}</span>
      <span class="blog-list-date">{{.R.Date}}</span>
      {{- if .R.ReadTime}}<span class="blog-list-readtime">{{.R.ReadTime}}</span>{{end}}
    </div>
    <p class="blog-list-description">{{.R.Description}}</p>
  </div>
</a>{{end}}

{{define "empty-list"}}<div class="no-posts">{{.}}</div>{{end}}

{{define "category-list"}}
{{- range .}}<a class="category-item{{if .Active}} active{{end}}" href="{{.Href}}" data-category="{{.Name}}" data-fragment="{{.Fragment}}">
  <span class="category-name">{{.Label}}</span> <span class="category-count">({{.Count}})</span>
</a>{{end}}
{{- end}}

{{define "stats"}}<div class="character-stats">
  {{- range .}}
  <div class="stat-row" data-stat="{{.Name}}"><span class="stat-label">{{.Label}}</span><span class="stat-dots">
    {{- range .Slots}}<span class="dot{{if .}} active{{end}}"></span>{{end -}}
  </span></div>
  {{- end}}
</div>{{end}}

{{define "detail-character"}}<a class="back-btn" href="{{.Back}}">&larr; Back</a>
<div class="character-image-container"><img src="{{.R.FullImage}}" alt="{{.R.Name}}"></div>
<div class="character-info">
  <h1 class="character-name">{{.R.Name}}</h1>
  <p class="character-title">{{.R.Title}}</p>
  <p class="character-description">{{.R.Description}}</p>
  {{template "stats" .Stats}}
  <div class="character-story">{{.Body}}</div>
</div>{{end}}

{{define "detail-archive"}}<a class="back-btn" href="{{.Back}}">&larr; Back</a>
<div class="archive-image-container">{{if .R.FullImage}}<img src="{{.R.FullImage}}" alt="{{.R.Title}}">{{else}}<div class="archive-no-image">No Image</div>{{end}}</div>
<div class="archive-content">
  <h1 class="archive-detail-title">{{.R.Title}}</h1>
  <div class="archive-meta"><span class="archive-type">{{.R.Type}}</span><span class="archive-date">{{.R.Date}}</span></div>
  {{- if or .R.Genre .R.Duration .R.Tools}}
  <dl class="archive-facts">
    {{- if .R.Genre}}<dt>Genre</dt><dd>{{.R.Genre}}</dd>{{end}}
    {{- if .R.Duration}}<dt>Duration</dt><dd>{{.R.Duration}}</dd>{{end}}
    {{- if .R.Tools}}<dt>Tools</dt><dd>{{.R.Tools}}</dd>{{end}}
  </dl>
  {{- end}}
  <p class="archive-description">{{.R.Description}}</p>
  <div class="archive-body">{{.Body}}</div>
</div>{{end}}

{{define "detail-blog"}}<a class="back-btn" href="{{.Back}}">&larr; Back</a>
<article class="archive-content blog-post">
  <h1 class="archive-detail-title">{{.R.Title}}</h1>
  <div class="blog-meta">
    <span class="blog-category">{{.R.Category}}</span>
    <span class="blog-date">{{.R.Date}}</span>
    {{- if .R.ReadTime}}<span class="blog-readtime">{{.R.ReadTime}}</span>{{end}}
    <span class="blog-views">{{.R.Views}} views</span>
  </div>
  {{- if .R.Tags}}
  <ul class="blog-tags">{{range .R.Tags}}<li class="tag">#{{.}}</li>{{end}}</ul>
  {{- end}}
  {{- if .R.FullImage}}<div class="archive-image-container"><img src="{{.R.FullImage}}" alt="{{.R.Title}}"></div>{{end}}
  <p class="archive-description">{{.R.Description}}</p>
  <div class="archive-body">{{.Body}}</div>
</article>{{end}}

{{define "not-found"}}<a class="back-btn" href="{{.Back}}">&larr; Back</a>
<div class="not-found">
  <h1>찾을 수 없습니다</h1>
  <p>요청한 항목이 없습니다. (id: {{.ID}})</p>
</div>{{end}}
`

// cssContent is the default stylesheet.
const cssContent = `:root {
  --bg: #0f1020;
  --surface: #1a1b33;
  --text: #e8e8f4;
  --muted: #9a9bb8;
  --accent: #8fa8ff;
  --radius: 10px;
}
* { box-sizing: border-box; }
body { margin: 0; background: var(--bg); color: var(--text); font-family: "Pretendard", "Noto Sans KR", system-ui, sans-serif; line-height: 1.6; }
a { color: inherit; text-decoration: none; }
img { max-width: 100%; display: block; }

.navbar { position: sticky; top: 0; z-index: 10; background: rgba(15, 16, 32, 0.9); backdrop-filter: blur(6px); }
.nav-container { max-width: 1100px; margin: 0 auto; padding: 0.75rem 1rem; }
.nav-links { display: flex; gap: 0.5rem; flex-wrap: wrap; justify-content: center; }
.nav-btn { padding: 0.4rem 0.9rem; border-radius: 999px; color: var(--muted); }
.nav-btn:hover, .nav-btn.active { color: var(--text); background: var(--surface); }

.content-container { max-width: 1100px; margin: 0 auto; padding: 2rem 1rem 4rem; min-height: 70vh; }
.page-title { text-align: center; letter-spacing: 0.1em; font-weight: 300; }
.static-page { max-width: 760px; margin: 0 auto; }
.static-page table { border-collapse: collapse; width: 100%; }
.static-page th, .static-page td { border-bottom: 1px solid var(--surface); padding: 0.5rem; text-align: left; }

.character-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(220px, 1fr)); gap: 1.5rem; }
.character-item { display: block; border-radius: var(--radius); overflow: hidden; background: var(--surface); transition: transform 0.2s ease; }
.character-item:hover, .archive-item:hover, .blog-item:hover { transform: translateY(-4px); }
.character-item-info { display: flex; flex-direction: column; padding: 0.75rem 1rem; }
.character-item-title { color: var(--muted); font-size: 0.9rem; }

.archive-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(260px, 1fr)); gap: 1.5rem; }
.archive-item { display: block; border-radius: var(--radius); overflow: hidden; background: var(--surface); transition: transform 0.2s ease; }
.archive-image { aspect-ratio: 4 / 3; overflow: hidden; }
.archive-image img { width: 100%; height: 100%; object-fit: cover; }
.archive-no-image { display: flex; align-items: center; justify-content: center; height: 100%; min-height: 160px; color: var(--muted); }
.archive-info { padding: 0.75rem 1rem; }
.archive-date, .archive-type { color: var(--muted); font-size: 0.85rem; margin-right: 0.5rem; }
.archive-title { margin: 0.25rem 0; }

.blog-layout { display: grid; grid-template-columns: 220px 1fr; gap: 2rem; }
.category-list { display: flex; flex-direction: column; gap: 0.25rem; }
.category-item { padding: 0.5rem 0.75rem; border-radius: var(--radius); color: var(--muted); cursor: pointer; }
.category-item.active, .category-item:hover { background: var(--surface); color: var(--text); }
.blog-list { display: flex; flex-direction: column; gap: 1rem; }
.blog-item { display: block; padding: 1rem 1.25rem; border-radius: var(--radius); background: var(--surface); transition: transform 0.2s ease; }
.blog-list-title { margin: 0 0 0.25rem; }
.blog-list-meta span { color: var(--muted); font-size: 0.85rem; margin-right: 0.75rem; }
.blog-list-category { color: var(--accent) !important; }
.no-posts { color: var(--muted); padding: 2rem; text-align: center; }

.back-btn { display: inline-block; margin-bottom: 1.5rem; color: var(--muted); }
.back-btn:hover { color: var(--text); }
.character-detail-content { display: grid; grid-template-columns: minmax(240px, 400px) 1fr; gap: 2rem; }
.character-detail-content .back-btn { grid-column: 1 / -1; }
.character-image-container img, .archive-image-container img { border-radius: var(--radius); }
.character-title { color: var(--accent); }
.stat-row { display: flex; align-items: center; gap: 1rem; margin: 0.35rem 0; }
.stat-label { width: 5rem; color: var(--muted); }
.dot { display: inline-block; width: 12px; height: 12px; border-radius: 50%; margin-right: 6px; background: #34365a; }
.dot.active { background: var(--accent); }
.archive-content { max-width: 760px; margin: 1.5rem auto 0; }
.archive-facts { display: grid; grid-template-columns: max-content 1fr; gap: 0.25rem 1rem; color: var(--muted); }
.blog-meta span { color: var(--muted); margin-right: 0.75rem; font-size: 0.9rem; }
.blog-tags { list-style: none; padding: 0; display: flex; gap: 0.5rem; flex-wrap: wrap; }
.tag { color: var(--accent); font-size: 0.85rem; }
.not-found, .unavailable { text-align: center; padding: 4rem 1rem; }

.footer { text-align: center; color: var(--muted); font-size: 0.85rem; padding: 2rem 1rem; }
.scroll-top-btn { position: fixed; right: 1.5rem; bottom: 1.5rem; width: 2.5rem; height: 2.5rem; border: none; border-radius: 50%; background: var(--surface); color: var(--text); cursor: pointer; opacity: 0; pointer-events: none; transition: opacity 0.3s ease; }
.scroll-top-btn.show { opacity: 1; pointer-events: auto; }

@media (max-width: 720px) {
  .blog-layout, .character-detail-content { grid-template-columns: 1fr; }
}
`

// jsContent is the page script: blog category switching without a full
// navigation, the scroll-to-top button, and live reload.
const jsContent = `(function () {
  'use strict';

  function swapList(link) {
    var list = document.getElementById('blog-list');
    if (!list || !link) return Promise.resolve();
    return fetch(link.getAttribute('data-fragment'))
      .then(function (res) {
        if (!res.ok) throw new Error('fragment ' + res.status);
        return res.text();
      })
      .then(function (html) {
        list.innerHTML = html;
        list.setAttribute('data-category', link.getAttribute('data-category'));
        document.querySelectorAll('.category-item').forEach(function (item) {
          item.classList.toggle('active', item === link);
        });
      });
  }

  function initCategoryFilter() {
    var categories = document.getElementById('category-list');
    var list = document.getElementById('blog-list');
    if (!categories || !list) return;

    categories.addEventListener('click', function (e) {
      var link = e.target.closest('.category-item');
      if (!link) return;
      e.preventDefault();
      swapList(link)
        .then(function () { history.replaceState({}, '', link.getAttribute('href')); })
        .catch(function () { window.location.href = link.href; });
    });

    // A static export always ships the unfiltered list; catch up with the URL.
    var wanted = new URLSearchParams(window.location.search).get('category') || 'all';
    if (list.getAttribute('data-category') !== wanted) {
      var items = categories.querySelectorAll('.category-item');
      for (var i = 0; i < items.length; i++) {
        if (items[i].getAttribute('data-category') === wanted) {
          swapList(items[i]);
          break;
        }
      }
    }
  }

  function initScrollTop() {
    var btn = document.getElementById('scroll-top');
    if (!btn) return;
    window.addEventListener('scroll', function () {
      btn.classList.toggle('show', window.scrollY > 300);
    });
    btn.addEventListener('click', function () {
      window.scrollTo({ top: 0, behavior: 'smooth' });
    });
  }

  function initLiveReload() {
    var path = document.body.getAttribute('data-live-reload');
    if (!path || !window.WebSocket) return;
    var scheme = window.location.protocol === 'https:' ? 'wss://' : 'ws://';
    var ws = new WebSocket(scheme + window.location.host + path);
    ws.onmessage = function (e) {
      if (e.data === 'reload') window.location.reload();
    };
  }

  document.addEventListener('DOMContentLoaded', function () {
    initCategoryFilter();
    initScrollTop();
    initLiveReload();
  });
})();
`
