package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// LoadKDL reads <root>/.codewalk.kdl and overlays it onto Default(root). A
// missing file is not an error: the caller runs on defaults (§6).
func LoadKDL(root string) (*Config, error) {
	path := filepath.Join(root, ".codewalk.kdl")
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := Default(root)
		cfg.Exclude = DeduplicatePatterns(append(cfg.Exclude, NewBuildArtifactDetector(root).DetectOutputDirectories()...))
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	doc, err := kdl.Parse(strings.NewReader(string(content)))
	if err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	cfg := Default(root)
	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "index_path":
			if s, ok := firstStringArg(n); ok {
				cfg.IndexPath = s
			}
		case "workspace_root":
			if s, ok := firstStringArg(n); ok {
				cfg.WorkspaceRoot = s
			}
		case "file_watch":
			applyFileWatch(cfg, n)
		case "server":
			applyServer(cfg, n)
		case "languages":
			applyLanguages(cfg, n)
		case "semantic_search":
			for _, cn := range n.Children {
				if nodeName(cn) == "model" {
					if s, ok := firstStringArg(cn); ok {
						cfg.Semantic.Model = s
					}
				}
			}
		case "documents":
			applyDocuments(cfg, n)
		case "include":
			if args := collectStringArgs(n); len(args) > 0 {
				cfg.Include = args
			}
		case "exclude":
			if args := collectStringArgs(n); len(args) > 0 {
				cfg.Exclude = args
			}
		}
	}

	detected := NewBuildArtifactDetector(root).DetectOutputDirectories()
	cfg.Exclude = DeduplicatePatterns(append(cfg.Exclude, detected...))

	return cfg, nil
}

func applyFileWatch(cfg *Config, n *document.Node) {
	for _, cn := range n.Children {
		switch nodeName(cn) {
		case "enabled":
			if b, ok := firstBoolArg(cn); ok {
				cfg.FileWatch.Enabled = b
			}
		case "debounce_ms":
			if v, ok := firstIntArg(cn); ok {
				cfg.FileWatch.DebounceMs = v
			}
		}
	}
}

func applyServer(cfg *Config, n *document.Node) {
	for _, cn := range n.Children {
		switch nodeName(cn) {
		case "mode":
			if s, ok := firstStringArg(cn); ok {
				cfg.Server.Mode = ServerMode(s)
			}
		case "bind":
			if s, ok := firstStringArg(cn); ok {
				cfg.Server.Bind = s
			}
		case "watch_interval_ms":
			if v, ok := firstIntArg(cn); ok {
				cfg.Server.WatchInterval = time.Duration(v) * time.Millisecond
			}
		}
	}
}

func applyLanguages(cfg *Config, n *document.Node) {
	for _, lang := range n.Children {
		id := nodeName(lang)
		if id == "" {
			continue
		}
		entry := cfg.Languages[id]
		for _, cn := range lang.Children {
			switch nodeName(cn) {
			case "enabled":
				if b, ok := firstBoolArg(cn); ok {
					entry.Enabled = b
				}
			case "config_files":
				if args := collectStringArgs(cn); len(args) > 0 {
					entry.ConfigFiles = args
				}
			}
		}
		cfg.Languages[id] = entry
	}
}

func applyDocuments(cfg *Config, n *document.Node) {
	for _, cn := range n.Children {
		switch nodeName(cn) {
		case "enabled":
			if b, ok := firstBoolArg(cn); ok {
				cfg.Documents.Enabled = b
			}
		case "defaults":
			for _, dn := range cn.Children {
				if s, ok := firstStringArg(dn); ok {
					if cfg.Documents.Defaults == nil {
						cfg.Documents.Defaults = map[string]string{}
					}
					cfg.Documents.Defaults[nodeName(dn)] = s
				}
			}
		}
	}
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	s, ok := n.Arguments[0].Value.(string)
	return s, ok
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	b, ok := n.Arguments[0].Value.(bool)
	return b, ok
}

func collectStringArgs(n *document.Node) []string {
	if n == nil {
		return nil
	}
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 && len(n.Children) > 0 {
		for _, child := range n.Children {
			if s, ok := firstStringArg(child); ok {
				out = append(out, s)
			} else if child.Name != nil {
				if s, ok := child.Name.Value.(string); ok {
					out = append(out, s)
				}
			}
		}
	}
	return out
}
