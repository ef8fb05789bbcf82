// Package memory holds map-backed repositories used when no DATABASE_URL is
// configured and as store doubles in tests. Ordering matches the Postgres
// repositories.
package memory

import (
	"sync"

	"portfolio-backend/internal/domain"
)

// Store owns every table. Repositories returned by its methods share one lock.
type Store struct {
	mu             sync.RWMutex
	projects       map[string]domain.Project
	about          map[string]domain.AboutSection
	skills         map[string]domain.Skill
	certifications map[string]domain.Certification
	contacts       map[string]domain.ContactSubmission
	experiences    map[string]domain.Experience
}

func NewStore() *Store {
	return &Store{
		projects:       make(map[string]domain.Project),
		about:          make(map[string]domain.AboutSection),
		skills:         make(map[string]domain.Skill),
		certifications: make(map[string]domain.Certification),
		contacts:       make(map[string]domain.ContactSubmission),
		experiences:    make(map[string]domain.Experience),
	}
}

func (s *Store) Projects() domain.ProjectRepository             { return &projectRepo{s} }
func (s *Store) About() domain.AboutRepository                   { return &aboutRepo{s} }
func (s *Store) Skills() domain.SkillRepository                  { return &skillRepo{s} }
func (s *Store) Certifications() domain.CertificationRepository { return &certificationRepo{s} }
func (s *Store) Contacts() domain.ContactRepository              { return &contactRepo{s} }
func (s *Store) Experiences() domain.ExperienceRepository        { return &experienceRepo{s} }

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
