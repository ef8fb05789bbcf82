package cache

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Section keys for the public read cache.
const (
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionSkills         = "skills"
	SectionAbout          = "about"
	SectionExperiences    = "experiences"
)

// Store is an in-process TTL cache for public reads. A nil *Store is a valid
// cache that never hits.
type Store struct {
	c *gocache.Cache
}

func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		return nil
	}
	return &Store{c: gocache.New(ttl, 2*ttl)}
}

func (s *Store) Get(key string) (interface{}, bool) {
	if s == nil {
		return nil, false
	}
	return s.c.Get(key)
}

func (s *Store) Set(key string, value interface{}) {
	if s == nil {
		return
	}
	s.c.SetDefault(key, value)
}

// Invalidate drops the given sections. Keys derived from a section
// (section + ":" + suffix) are dropped with it.
func (s *Store) Invalidate(sections ...string) {
	if s == nil {
		return
	}
	for _, section := range sections {
		s.c.Delete(section)
		prefix := section + ":"
		for key := range s.c.Items() {
			if strings.HasPrefix(key, prefix) {
				s.c.Delete(key)
			}
		}
	}
}
