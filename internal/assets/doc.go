// Package assets provides the CSS, JavaScript and HTML templates used to
// render quizzes. Assets can be loaded from embedded files or custom
// filesystem paths.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (defaults)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is the loader used by the builder. It tries the custom
// FilesystemLoader first and falls back to EmbeddedLoader only when the
// asset is not found, so a site can override the quiz stylesheet while
// keeping the built-in script and templates.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css           # quiz.css, default.css (page theme)
//	├── scripts/
//	│   └── {name}.js            # quiz.js (client-side scoring)
//	└── templates/
//	    └── {name}/
//	        ├── quiz.html        # One quiz block
//	        └── summary.html     # Page score summary
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
