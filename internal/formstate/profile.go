package formstate

import (
	"strconv"

	"github.com/jonathan/readme-generator/internal/types"
)

// Collection names accepted by the profile store.
const (
	CollectionCustomSections  = "customSections"
	CollectionCustomPlatforms = "customPlatforms"
	CollectionProjects        = "projects"
)

// profileFields maps scalar field keys to their location in the state. Keys match
// the JSON field names used by the form and the schemas.
var profileFields = map[string]func(*types.ProfileState) *string{
	"name":         func(s *types.ProfileState) *string { return &s.Name },
	"bio":          func(s *types.ProfileState) *string { return &s.Bio },
	"profileImage": func(s *types.ProfileState) *string { return &s.ProfileImage },
	"resumeLink":   func(s *types.ProfileState) *string { return &s.ResumeLink },
	"collaborate":  func(s *types.ProfileState) *string { return &s.Collaborate },
	"helpWith":     func(s *types.ProfileState) *string { return &s.HelpWith },
	"learning":     func(s *types.ProfileState) *string { return &s.Learning },
	"howToReach":   func(s *types.ProfileState) *string { return &s.HowToReach },

	"github":        func(s *types.ProfileState) *string { return &s.GitHub },
	"linkedin":      func(s *types.ProfileState) *string { return &s.LinkedIn },
	"twitter":       func(s *types.ProfileState) *string { return &s.Twitter },
	"website":       func(s *types.ProfileState) *string { return &s.Website },
	"instagram":     func(s *types.ProfileState) *string { return &s.Instagram },
	"facebook":      func(s *types.ProfileState) *string { return &s.Facebook },
	"youtube":       func(s *types.ProfileState) *string { return &s.YouTube },
	"devto":         func(s *types.ProfileState) *string { return &s.DevTo },
	"hashnode":      func(s *types.ProfileState) *string { return &s.Hashnode },
	"discord":       func(s *types.ProfileState) *string { return &s.Discord },
	"telegram":      func(s *types.ProfileState) *string { return &s.Telegram },
	"medium":        func(s *types.ProfileState) *string { return &s.Medium },
	"reddit":        func(s *types.ProfileState) *string { return &s.Reddit },
	"stackoverflow": func(s *types.ProfileState) *string { return &s.StackOverflow },
	"gitlab":        func(s *types.ProfileState) *string { return &s.GitLab },
	"bitbucket":     func(s *types.ProfileState) *string { return &s.Bitbucket },

	"leetcode":      func(s *types.ProfileState) *string { return &s.LeetCode },
	"hackerrank":    func(s *types.ProfileState) *string { return &s.HackerRank },
	"codechef":      func(s *types.ProfileState) *string { return &s.CodeChef },
	"codeforces":    func(s *types.ProfileState) *string { return &s.CodeForces },
	"topcoder":      func(s *types.ProfileState) *string { return &s.TopCoder },
	"geeksforgeeks": func(s *types.ProfileState) *string { return &s.GeeksForGeeks },
	"interviewbit":  func(s *types.ProfileState) *string { return &s.InterviewBit },
	"spoj":          func(s *types.ProfileState) *string { return &s.SPOJ },
	"atcoder":       func(s *types.ProfileState) *string { return &s.AtCoder },
	"kickstart":     func(s *types.ProfileState) *string { return &s.KickStart },
	"projecteuler":  func(s *types.ProfileState) *string { return &s.ProjectEuler },
}

// ProfileStore owns the state of one profile form session. It has exactly one
// writer (the form) and is read by the generator via State snapshots.
type ProfileStore struct {
	state types.ProfileState
}

// NewProfileStore creates a store with all fields at their defaults.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{}
}

// State returns a snapshot of the current form state.
func (s *ProfileStore) State() types.ProfileState {
	return s.state
}

// SetField replaces one scalar field.
func (s *ProfileStore) SetField(key, value string) error {
	access, ok := profileFields[key]
	if !ok {
		return &UnknownFieldError{Field: key}
	}
	next := s.state
	*access(&next) = value
	s.state = next
	return nil
}

// SetSkills replaces the ordered selected-skill list. The caller guarantees the
// list is duplicate-free.
func (s *ProfileStore) SetSkills(skills []string) {
	next := s.state
	next.SelectedSkills = append([]string(nil), skills...)
	s.state = next
}

// AddEntity appends a new entity with a fresh id and default values to the named
// collection and returns the assigned id.
func (s *ProfileStore) AddEntity(collection string) (string, error) {
	id := newID()
	next := s.state
	switch collection {
	case CollectionCustomSections:
		next.CustomSections = appendEntity(next.CustomSections, types.CustomSection{ID: id})
	case CollectionCustomPlatforms:
		next.CustomPlatforms = appendEntity(next.CustomPlatforms, types.CustomPlatform{ID: id})
	case CollectionProjects:
		next.Projects = appendEntity(next.Projects, types.Project{ID: id, MediaType: types.MediaImage})
	default:
		return "", &UnknownCollectionError{Collection: collection}
	}
	s.state = next
	return id, nil
}

// RemoveEntity drops the entity with the given id from the named collection.
// A missing id is a no-op.
func (s *ProfileStore) RemoveEntity(collection, id string) error {
	next := s.state
	switch collection {
	case CollectionCustomSections:
		next.CustomSections = removeEntity(next.CustomSections, id, func(e types.CustomSection) string { return e.ID })
	case CollectionCustomPlatforms:
		next.CustomPlatforms = removeEntity(next.CustomPlatforms, id, func(e types.CustomPlatform) string { return e.ID })
	case CollectionProjects:
		next.Projects = removeEntity(next.Projects, id, func(e types.Project) string { return e.ID })
	default:
		return &UnknownCollectionError{Collection: collection}
	}
	s.state = next
	return nil
}

// UpdateEntity replaces one field of the entity with the given id in the named
// collection.
func (s *ProfileStore) UpdateEntity(collection, id, field, value string) error {
	next := s.state
	var err error
	switch collection {
	case CollectionCustomSections:
		next.CustomSections = updateEntity(next.CustomSections, id, func(e types.CustomSection) string { return e.ID },
			func(e types.CustomSection) types.CustomSection {
				switch field {
				case "heading":
					e.Heading = value
				case "description":
					e.Description = value
				default:
					err = &UnknownFieldError{Field: field}
				}
				return e
			})
	case CollectionCustomPlatforms:
		next.CustomPlatforms = updateEntity(next.CustomPlatforms, id, func(e types.CustomPlatform) string { return e.ID },
			func(e types.CustomPlatform) types.CustomPlatform {
				switch field {
				case "name":
					e.Name = value
				case "url":
					e.URL = value
				default:
					err = &UnknownFieldError{Field: field}
				}
				return e
			})
	case CollectionProjects:
		next.Projects = updateEntity(next.Projects, id, func(e types.Project) string { return e.ID },
			func(e types.Project) types.Project {
				return applyProjectField(e, field, value, &err)
			})
	default:
		return &UnknownCollectionError{Collection: collection}
	}
	if err != nil {
		return err
	}
	s.state = next
	return nil
}

// SetProjectMediaType switches a project entry between image and video mode,
// clearing the URL of the medium being switched away from.
func (s *ProfileStore) SetProjectMediaType(id string, mediaType types.MediaType) {
	next := s.state
	next.Projects = updateEntity(next.Projects, id, func(e types.Project) string { return e.ID },
		func(e types.Project) types.Project {
			e.MediaType = mediaType
			if mediaType == types.MediaImage {
				e.VideoURL = ""
			} else {
				e.ImageURL = ""
			}
			return e
		})
	s.state = next
}

// applyProjectField updates one field of a project entry. Setting imageUrl to a
// non-empty value forces mediaType=image and clears videoUrl, and symmetrically
// for videoUrl.
func applyProjectField(e types.Project, field, value string, errOut *error) types.Project {
	switch field {
	case "name":
		e.Name = value
	case "description":
		e.Description = value
	case "url":
		e.URL = value
	case "demoUrl":
		e.DemoURL = value
	case "imageUrl":
		e.ImageURL = value
		if value != "" {
			e.VideoURL = ""
			e.MediaType = types.MediaImage
		}
	case "videoUrl":
		e.VideoURL = value
		if value != "" {
			e.ImageURL = ""
			e.MediaType = types.MediaVideo
		}
	case "techStack":
		e.TechStack = value
	case "startDate":
		e.StartDate = value
	case "endDate":
		e.EndDate = value
	case "featured":
		featured, parseErr := strconv.ParseBool(value)
		if parseErr != nil {
			*errOut = &UnknownFieldError{Field: field + "=" + value}
			return e
		}
		e.Featured = featured
	default:
		*errOut = &UnknownFieldError{Field: field}
	}
	return e
}
