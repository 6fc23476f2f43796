// Package docs embeds the markdown topics served by `datepick docs` and the
// picker's help overlay.
package docs

import (
	"bufio"
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed content/*.md
var contentFS embed.FS

// Topic describes one embedded page. Title is the page's first heading.
type Topic struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// Index lists every topic sorted by name.
func Index() []Topic {
	entries, err := fs.ReadDir(contentFS, "content")
	if err != nil {
		return []Topic{}
	}
	out := make([]Topic, 0, len(entries))
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), ".md")
		if !ok || name == "" || e.IsDir() {
			continue
		}
		out = append(out, Topic{Name: name, Title: title(name)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func Topics() []string {
	idx := Index()
	out := make([]string, 0, len(idx))
	for _, t := range idx {
		out = append(out, t.Name)
	}
	return out
}

// Resolve maps a topic name, or an unambiguous prefix of one, to its name.
func Resolve(topic string) (string, bool) {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" {
		return "", false
	}
	var match string
	for _, name := range Topics() {
		if name == topic {
			return name, true
		}
		if strings.HasPrefix(name, topic) {
			if match != "" {
				return "", false
			}
			match = name
		}
	}
	return match, match != ""
}

func Get(topic string) (string, bool) {
	name, ok := Resolve(topic)
	if !ok {
		return "", false
	}
	b, err := contentFS.ReadFile(path.Join("content", name+".md"))
	if err != nil {
		return "", false
	}
	return string(b), true
}

// Keys is the key reference shown by the help overlay.
func Keys() string {
	s, _ := Get("keys")
	return s
}

func title(name string) string {
	f, err := contentFS.Open(path.Join("content", name+".md"))
	if err != nil {
		return name
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if h, ok := strings.CutPrefix(strings.TrimSpace(sc.Text()), "# "); ok {
			return strings.TrimSpace(h)
		}
	}
	return name
}
