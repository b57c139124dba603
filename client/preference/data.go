package preference

import (
	"sort"
	"strings"
	"time"
)

// Data is what gets persisted in the preference file.
type Data struct {
	Servers map[string]Server `json:"servers,omitempty"`
}

// Server remembers the last username used against an API base URL.
type Server struct {
	URL      string    `json:"url"`
	Username string    `json:"username,omitempty"`
	LastUsed time.Time `json:"last_used"`
}

type Servers []Server

func NewData() *Data {
	return &Data{Servers: make(map[string]Server)}
}

func normalizeURL(u string) string {
	return strings.TrimSuffix(strings.TrimSpace(u), "/")
}

// SetServer stores s and stamps it as used now. Empty URLs are ignored.
func (d *Data) SetServer(s *Server) {
	if s == nil {
		return
	}
	key := normalizeURL(s.URL)
	if key == "" || key == "<nil>" {
		return
	}
	if d.Servers == nil {
		d.Servers = make(map[string]Server)
	}
	s.URL = key
	s.LastUsed = time.Now()
	d.Servers[key] = *s
}

// Server returns the stored entry for url, or a fresh one.
func (d *Data) Server(url string) *Server {
	key := normalizeURL(url)
	if s, ok := d.Servers[key]; ok {
		return &s
	}
	return &Server{URL: key}
}

// RecentlyUsedServers returns up to n servers, most recent first. A
// negative n returns all of them.
func (d *Data) RecentlyUsedServers(n int) Servers {
	var servers Servers
	for key, s := range d.Servers {
		if key == "" || key == "<nil>" {
			continue
		}
		servers = append(servers, s)
	}
	sort.Slice(servers, func(i, j int) bool {
		return servers[i].LastUsed.After(servers[j].LastUsed)
	})
	if n >= 0 && n < len(servers) {
		servers = servers[:n]
	}
	return servers
}
