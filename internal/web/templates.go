package web

// indexTemplate is the main analyzer page: upload form plus, once an
// analysis is showing, the rendered result sections.
const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Resume Radar</title>
  <link rel="stylesheet" href="/static/style.css">
</head>
<body>
  <header class="top-bar">
    <h1>Resume Radar</h1>
    <nav>
      <a href="/" class="nav-link active">Analyze</a>
      <a href="/history" class="nav-link">History</a>
    </nav>
  </header>
  <main class="content">
    {{if .Notice}}<div class="notice{{if .NoticeErr}} notice-error{{end}}">{{.Notice}}</div>{{end}}

    <section class="upload-card" id="upload-card">
      <form id="upload-form" action="/upload" method="post" enctype="multipart/form-data">
        <div class="drop-zone" id="drop-zone">
          <p>Drag a PDF resume here, or</p>
          <label class="file-label">
            Choose file
            <input type="file" id="file-input" name="file" accept=".pdf">
          </label>
          <p class="hint">PDF only, up to {{.MaxUploadMB}} MB</p>
          <p class="file-error" id="file-error" hidden></p>
        </div>
        <button type="submit" class="primary-btn" id="upload-btn" disabled>Analyze Resume</button>
      </form>
      <div class="loading" id="loading-indicator" hidden>
        <div class="spinner"></div>
        <p>Analyzing your resume...</p>
      </div>
    </section>

    {{if .Fragments}}
    <section class="results" id="results-root">
      <div class="results-header">
        <h2>Analysis Results</h2>
        <form action="/reset" method="post"><button type="submit" class="secondary-btn">Analyze Another</button></form>
      </div>

      <div class="card"><h3>Overall Rating</h3>{{.Fragments.Rating}}</div>
      <div class="card"><h3>Personal Information</h3>{{.Fragments.PersonalInfo}}</div>
      <div class="card"><h3>Core Skills</h3>{{.Fragments.CoreSkills}}</div>
      <div class="card"><h3>Soft Skills</h3>{{.Fragments.SoftSkills}}</div>
      {{if .Fragments.Certifications}}<div class="card"><h3>Certifications</h3>{{.Fragments.Certifications}}</div>{{end}}
      {{if .Fragments.Languages}}<div class="card"><h3>Languages</h3>{{.Fragments.Languages}}</div>{{end}}
      <div class="card"><h3>Work Experience</h3>{{.Fragments.WorkExperience}}</div>
      <div class="card"><h3>Education</h3>{{.Fragments.Education}}</div>
      <div class="card"><h3>Projects</h3>{{.Fragments.Projects}}</div>
      {{if .Fragments.Achievements}}<div class="card"><h3>Achievements</h3>{{.Fragments.Achievements}}</div>{{end}}
      <div class="card"><h3>Strengths</h3>{{.Fragments.Strengths}}</div>
      <div class="card"><h3>Areas for Improvement</h3>{{.Fragments.Improvements}}</div>
      <div class="card"><h3>Upskilling Suggestions</h3>{{.Fragments.Upskill}}</div>
      {{if .Fragments.MissingSections}}<div class="card"><h3>Missing Sections</h3>{{.Fragments.MissingSections}}</div>{{end}}
    </section>
    {{end}}
  </main>
  <script src="/static/app.js"></script>
</body>
</html>`

// historyTemplate lists previously analyzed resumes with view and delete
// actions. The view button loads the detail modal via /resume/{id}/fragment.
const historyTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>History - Resume Radar</title>
  <link rel="stylesheet" href="/static/style.css">
</head>
<body>
  <header class="top-bar">
    <h1>Resume Radar</h1>
    <nav>
      <a href="/" class="nav-link">Analyze</a>
      <a href="/history" class="nav-link active">History</a>
    </nav>
  </header>
  <main class="content">
    {{if .Notice}}<div class="notice{{if .IsErr}} notice-error{{end}}">{{.Notice}}</div>{{end}}
    <div class="results-header">
      <h2>Previously Analyzed Resumes</h2>
      <a href="/history?refresh=1" class="secondary-btn">Refresh</a>
    </div>
    {{if .Rows}}
    <table class="history-table">
      <thead>
        <tr><th>File</th><th>Name</th><th>Email</th><th>Uploaded</th><th>Rating</th><th></th></tr>
      </thead>
      <tbody>
        {{range .Rows}}
        <tr>
          <td>{{.Filename}}</td>
          <td>{{.Name}}</td>
          <td>{{.Email}}</td>
          <td>{{.Uploaded}}</td>
          <td>{{.Rating}}/10</td>
          <td class="row-actions">
            <button class="secondary-btn view-btn" data-id="{{.ID}}">View</button>
            <form action="/resume/{{.ID}}/delete" method="post" class="delete-form">
              <button type="submit" class="danger-btn">Delete</button>
            </form>
          </td>
        </tr>
        {{end}}
      </tbody>
    </table>
    {{else}}
    <p class="empty-placeholder">No resumes analyzed yet.</p>
    {{end}}
  </main>

  <div class="modal-backdrop" id="modal-backdrop" hidden>
    <div class="modal" role="dialog" aria-modal="true">
      <button class="modal-close" id="modal-close" aria-label="Close">&times;</button>
      <div class="modal-body" id="modal-body"></div>
    </div>
  </div>
  <script src="/static/app.js"></script>
</body>
</html>`

// modalTemplate is the inner HTML of the detail modal, rendered from a
// Fragments value produced with the modal target.
const modalTemplate = `<div class="modal-sections">
  <div class="card"><h3>Overall Rating</h3>{{.Rating}}</div>
  <div class="card"><h3>Personal Information</h3>{{.PersonalInfo}}</div>
  <div class="card"><h3>Core Skills</h3>{{.CoreSkills}}</div>
  <div class="card"><h3>Soft Skills</h3>{{.SoftSkills}}</div>
  {{if .Certifications}}<div class="card"><h3>Certifications</h3>{{.Certifications}}</div>{{end}}
  {{if .Languages}}<div class="card"><h3>Languages</h3>{{.Languages}}</div>{{end}}
  <div class="card"><h3>Work Experience</h3>{{.WorkExperience}}</div>
  <div class="card"><h3>Education</h3>{{.Education}}</div>
  <div class="card"><h3>Projects</h3>{{.Projects}}</div>
  {{if .Achievements}}<div class="card"><h3>Achievements</h3>{{.Achievements}}</div>{{end}}
  <div class="card"><h3>Strengths</h3>{{.Strengths}}</div>
  <div class="card"><h3>Areas for Improvement</h3>{{.Improvements}}</div>
  <div class="card"><h3>Upskilling Suggestions</h3>{{.Upskill}}</div>
  {{if .MissingSections}}<div class="card"><h3>Missing Sections</h3>{{.MissingSections}}</div>{{end}}
</div>`

// styleCSS is the full stylesheet for the UI.
const styleCSS = `:root {
  --bg: #f8f9fa;
  --card-bg: #ffffff;
  --text: #212529;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-hover: #1c7ed6;
  --danger: #e03131;
  --ok-bg: #d3f9d8;
  --err-bg: #ffe3e3;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
}

* { box-sizing: border-box; }
body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  background: var(--bg);
  color: var(--text);
}

.top-bar {
  display: flex;
  justify-content: space-between;
  align-items: center;
  padding: 0.75rem 1.5rem;
  background: var(--card-bg);
  border-bottom: 1px solid var(--border);
}
.top-bar h1 { font-size: 1.25rem; margin: 0; }
.nav-link { margin-left: 1rem; color: var(--text-muted); text-decoration: none; }
.nav-link.active { color: var(--accent); font-weight: 600; }

.content { max-width: 860px; margin: 0 auto; padding: 1.5rem; }

.notice {
  padding: 0.6rem 1rem;
  border-radius: 6px;
  background: var(--ok-bg);
  margin-bottom: 1rem;
}
.notice-error { background: var(--err-bg); }

.upload-card {
  background: var(--card-bg);
  border-radius: 8px;
  box-shadow: var(--shadow);
  padding: 1.5rem;
  margin-bottom: 1.5rem;
}
.drop-zone {
  border: 2px dashed var(--border);
  border-radius: 8px;
  padding: 2rem;
  text-align: center;
}
.drop-zone.drag-over { border-color: var(--accent); background: #e7f5ff; }
.file-label {
  display: inline-block;
  padding: 0.4rem 1rem;
  background: var(--accent);
  color: #fff;
  border-radius: 6px;
  cursor: pointer;
}
.file-label input { display: none; }
.hint { color: var(--text-muted); font-size: 0.85rem; }
.file-error { color: var(--danger); font-size: 0.9rem; }

.primary-btn, .secondary-btn, .danger-btn {
  border: none;
  border-radius: 6px;
  padding: 0.5rem 1.2rem;
  cursor: pointer;
  font-size: 0.95rem;
  text-decoration: none;
  display: inline-block;
}
.primary-btn { background: var(--accent); color: #fff; margin-top: 1rem; }
.primary-btn:disabled { opacity: 0.5; cursor: not-allowed; }
.primary-btn:hover:not(:disabled) { background: var(--accent-hover); }
.secondary-btn { background: var(--bg); border: 1px solid var(--border); color: var(--text); }
.danger-btn { background: var(--danger); color: #fff; }

.loading { text-align: center; padding: 1.5rem; }
.spinner {
  width: 32px; height: 32px;
  margin: 0 auto 0.75rem;
  border: 3px solid var(--border);
  border-top-color: var(--accent);
  border-radius: 50%;
  animation: spin 0.8s linear infinite;
}
@keyframes spin { to { transform: rotate(360deg); } }

.results-header { display: flex; justify-content: space-between; align-items: center; }
.card {
  background: var(--card-bg);
  border-radius: 8px;
  box-shadow: var(--shadow);
  padding: 1rem 1.25rem;
  margin-bottom: 1rem;
}
.card h3 { margin-top: 0; font-size: 1rem; color: var(--text-muted); text-transform: uppercase; letter-spacing: 0.03em; }

.info-row { display: flex; gap: 0.5rem; padding: 0.15rem 0; }
.info-label { font-weight: 600; min-width: 5.5rem; }

.rating { display: flex; align-items: center; gap: 0.75rem; }
.rating-value { font-size: 1.8rem; font-weight: 700; }
.rating-max { color: var(--text-muted); }
.rating-bar {
  flex: 1;
  height: 10px;
  background: var(--border);
  border-radius: 5px;
  overflow: hidden;
}
.rating-fill { height: 100%; background: var(--accent); }

.skills-list { display: flex; flex-wrap: wrap; gap: 0.4rem; }
.skill-tag, .tech-tag, .missing-tag {
  padding: 0.2rem 0.6rem;
  border-radius: 999px;
  font-size: 0.85rem;
  background: #e7f5ff;
  color: var(--accent-hover);
}
.missing-tag { background: var(--err-bg); color: var(--danger); }
.tech-tags { margin-top: 0.4rem; }

.experience-item, .education-item, .project-item {
  padding: 0.75rem 0;
  border-bottom: 1px solid var(--border);
}
.experience-item:last-child, .education-item:last-child, .project-item:last-child { border-bottom: none; }
.experience-item h4, .education-item h4, .project-item h4 { margin: 0 0 0.2rem; }
.item-subtitle { font-weight: 600; }
.item-meta { color: var(--text-muted); font-size: 0.9rem; }
.bullet-list { margin: 0.4rem 0 0; padding-left: 1.2rem; }
.project-link { color: var(--accent); word-break: break-all; }
.empty-placeholder { color: var(--text-muted); font-style: italic; }

.history-table { width: 100%; border-collapse: collapse; background: var(--card-bg); box-shadow: var(--shadow); border-radius: 8px; }
.history-table th, .history-table td { padding: 0.6rem 0.8rem; text-align: left; border-bottom: 1px solid var(--border); }
.history-table th { color: var(--text-muted); font-size: 0.85rem; text-transform: uppercase; }
.row-actions { display: flex; gap: 0.4rem; }

.modal-backdrop {
  position: fixed;
  inset: 0;
  background: rgba(0,0,0,0.45);
  display: flex;
  align-items: center;
  justify-content: center;
  padding: 1.5rem;
}
.modal {
  background: var(--bg);
  border-radius: 10px;
  max-width: 760px;
  width: 100%;
  max-height: 85vh;
  overflow-y: auto;
  position: relative;
  padding: 1.5rem;
}
.modal-close {
  position: absolute;
  top: 0.6rem; right: 0.8rem;
  border: none;
  background: none;
  font-size: 1.6rem;
  cursor: pointer;
  color: var(--text-muted);
}
`

// appJS drives the client-side behavior: file picking with inline validation,
// drag & drop, double-submit lockout, the history detail modal, and delete
// confirmation.
const appJS = `(function () {
  var MAX_BYTES = 10 * 1024 * 1024;

  var form = document.getElementById('upload-form');
  if (form) {
    var input = document.getElementById('file-input');
    var btn = document.getElementById('upload-btn');
    var dropZone = document.getElementById('drop-zone');
    var fileError = document.getElementById('file-error');
    var loading = document.getElementById('loading-indicator');
    var submitting = false;

    function validate(file) {
      if (!file) return 'No file selected.';
      if (!/\.pdf$/i.test(file.name)) return 'Only PDF files are supported.';
      if (file.size > MAX_BYTES) return 'File exceeds the 10 MB size limit.';
      return null;
    }

    function setFile(file) {
      var problem = validate(file);
      if (problem) {
        fileError.textContent = problem;
        fileError.hidden = false;
        btn.disabled = true;
        return;
      }
      fileError.hidden = true;
      btn.disabled = false;
    }

    input.addEventListener('change', function () { setFile(input.files[0]); });

    ['dragover', 'dragenter'].forEach(function (ev) {
      dropZone.addEventListener(ev, function (e) {
        e.preventDefault();
        dropZone.classList.add('drag-over');
      });
    });
    ['dragleave', 'drop'].forEach(function (ev) {
      dropZone.addEventListener(ev, function (e) {
        e.preventDefault();
        dropZone.classList.remove('drag-over');
      });
    });
    dropZone.addEventListener('drop', function (e) {
      if (e.dataTransfer.files.length > 0) {
        input.files = e.dataTransfer.files;
        setFile(input.files[0]);
      }
    });

    form.addEventListener('submit', function (e) {
      if (submitting) {
        e.preventDefault();
        return;
      }
      var problem = validate(input.files[0]);
      if (problem) {
        e.preventDefault();
        fileError.textContent = problem;
        fileError.hidden = false;
        return;
      }
      submitting = true;
      btn.disabled = true;
      loading.hidden = false;
    });
  }

  var backdrop = document.getElementById('modal-backdrop');
  if (backdrop) {
    var modalBody = document.getElementById('modal-body');

    function closeModal() {
      backdrop.hidden = true;
      modalBody.innerHTML = '';
    }

    document.querySelectorAll('.view-btn').forEach(function (btn) {
      btn.addEventListener('click', function () {
        fetch('/resume/' + btn.dataset.id + '/fragment')
          .then(function (resp) {
            if (!resp.ok) throw new Error('status ' + resp.status);
            return resp.text();
          })
          .then(function (html) {
            modalBody.innerHTML = html;
            backdrop.hidden = false;
          })
          .catch(function (err) {
            modalBody.innerHTML = '<p class="empty-placeholder">Loading failed: ' + err.message + '</p>';
            backdrop.hidden = false;
          });
      });
    });

    document.getElementById('modal-close').addEventListener('click', closeModal);
    backdrop.addEventListener('click', function (e) {
      if (e.target === backdrop) closeModal();
    });
    document.addEventListener('keydown', function (e) {
      if (e.key === 'Escape' && !backdrop.hidden) closeModal();
    });
  }

  document.querySelectorAll('.delete-form').forEach(function (f) {
    f.addEventListener('submit', function (e) {
      if (!window.confirm('Delete this resume? This cannot be undone.')) {
        e.preventDefault();
      }
    });
  });
})();
`
