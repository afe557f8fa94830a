// Package config defines the recognized configuration surface (§6) and
// loads it from a project's .codewalk.kdl file, falling back to documented
// defaults. It owns include/exclude pattern computation (gitignore.go,
// build_artifact_detector.go) that the pipeline and watcher both consult.
package config

import "time"

// ServerMode selects the tool-protocol transport framing (§6). The
// transport itself is an external collaborator (spec.md §1); this type only
// needs to exist so a real transport can be selected without touching
// internal/query.
type ServerMode string

const (
	ServerModeStdio ServerMode = "stdio"
	ServerModeHTTP  ServerMode = "http"
	ServerModeHTTPS ServerMode = "https"
)

// FileWatch configures the unified source/config/doc watcher (§4.7.2).
type FileWatch struct {
	Enabled     bool
	DebounceMs  int
}

// Server configures the tool-protocol server shell (§6).
type Server struct {
	Mode          ServerMode
	Bind          string
	WatchInterval time.Duration
}

// LanguageConfig toggles one language entry in the registry and names the
// project config files its behavior should consult (tsconfig.json,
// composer.json, go.mod, …) when computing module paths (§4.2).
type LanguageConfig struct {
	Enabled     bool
	ConfigFiles []string
}

// SemanticSearch configures the embedding backend (§4.6 semantic metadata,
// internal/semantic.EmbeddingGenerator). Model selection is the only
// knob this module owns; download/inference is out of scope (spec.md §1).
type SemanticSearch struct {
	Model string
}

// Documents configures the document-store side of the full-text index
// (§6 documents.{enabled, defaults}).
type Documents struct {
	Enabled  bool
	Defaults map[string]string
}

// Config is the full recognized configuration surface (§6).
type Config struct {
	IndexPath     string
	WorkspaceRoot string
	FileWatch     FileWatch
	Server        Server
	Languages     map[string]LanguageConfig
	Semantic      SemanticSearch
	Documents     Documents
	Include       []string
	Exclude       []string

	// PerformanceWorkers is the PARSE stage worker pool size; zero means
	// auto-detect (num_cpus), per §5's channel-capacity guidance.
	PerformanceWorkers int
	// IndexWriters is the INDEX stage worker pool size; §5 recommends 1-4
	// to serialize writes against the store.
	IndexWriters int
}

// Default returns the documented default configuration (§6), rooted at root.
func Default(root string) *Config {
	return &Config{
		IndexPath:     root + "/.codewalk-index",
		WorkspaceRoot: root,
		FileWatch:     FileWatch{Enabled: true, DebounceMs: 500},
		Server: Server{
			Mode:          ServerModeStdio,
			Bind:          "127.0.0.1:0",
			WatchInterval: 2 * time.Second,
		},
		Languages: map[string]LanguageConfig{
			"go":         {Enabled: true, ConfigFiles: []string{"go.mod"}},
			"python":     {Enabled: true, ConfigFiles: []string{"pyproject.toml", "setup.py"}},
			"javascript": {Enabled: true, ConfigFiles: []string{"package.json"}},
			"typescript": {Enabled: true, ConfigFiles: []string{"tsconfig.json", "package.json"}},
			"java":       {Enabled: true, ConfigFiles: []string{"pom.xml", "build.gradle"}},
			"rust":       {Enabled: true, ConfigFiles: []string{"Cargo.toml"}},
			"csharp":     {Enabled: true, ConfigFiles: []string{"*.csproj"}},
			"php":        {Enabled: true, ConfigFiles: []string{"composer.json"}},
			"cpp":        {Enabled: true, ConfigFiles: []string{"CMakeLists.txt"}},
			"zig":        {Enabled: true, ConfigFiles: []string{"build.zig"}},
		},
		Semantic:  SemanticSearch{Model: "local-minilm-384"},
		Documents: Documents{Enabled: true, Defaults: map[string]string{}},
		Include:   []string{"**/*"},
		Exclude: []string{
			"**/.git/**", "**/node_modules/**", "**/vendor/**",
			"**/target/**", "**/dist/**", "**/build/**",
		},
		PerformanceWorkers: 0,
		IndexWriters:       2,
	}
}
