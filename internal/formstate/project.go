package formstate

import (
	"github.com/jonathan/readme-generator/internal/types"
)

// Collection names accepted by the project store. CollectionCustomSections is
// shared with the profile store.
const (
	CollectionAuthors           = "authors"
	CollectionFeatures          = "features"
	CollectionInstallationSteps = "installationSteps"
)

// projectFields maps scalar field keys to their location in the state. The media
// URL fields carry the exclusivity rule and are handled in SetField directly.
var projectFields = map[string]func(*types.ProjectState) *string{
	"projectName": func(s *types.ProjectState) *string { return &s.ProjectName },
	"description": func(s *types.ProjectState) *string { return &s.Description },
	"usage":       func(s *types.ProjectState) *string { return &s.Usage },
}

// ProjectStore owns the state of one project form session.
type ProjectStore struct {
	state types.ProjectState
}

// NewProjectStore creates a store with the project form defaults: individual
// author mode with one empty author, and image media mode.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{
		state: types.ProjectState{
			MediaType:  types.MediaImage,
			AuthorType: types.AuthorIndividual,
			Authors:    []types.Author{{ID: newID()}},
		},
	}
}

// State returns a snapshot of the current form state.
func (s *ProjectStore) State() types.ProjectState {
	return s.state
}

// SetField replaces one scalar field. Setting imageUrl to a non-empty value
// forces mediaType=image and clears videoUrl; symmetrically for videoUrl.
func (s *ProjectStore) SetField(key, value string) error {
	next := s.state
	switch key {
	case "imageUrl":
		next.ImageURL = value
		if value != "" {
			next.VideoURL = ""
			next.MediaType = types.MediaImage
		}
	case "videoUrl":
		next.VideoURL = value
		if value != "" {
			next.ImageURL = ""
			next.MediaType = types.MediaVideo
		}
	default:
		access, ok := projectFields[key]
		if !ok {
			return &UnknownFieldError{Field: key}
		}
		*access(&next) = value
	}
	s.state = next
	return nil
}

// SetMediaType switches between image and video mode, clearing the URL of the
// medium being switched away from.
func (s *ProjectStore) SetMediaType(mediaType types.MediaType) {
	next := s.state
	next.MediaType = mediaType
	if mediaType == types.MediaImage {
		next.VideoURL = ""
	} else {
		next.ImageURL = ""
	}
	s.state = next
}

// SetAuthorType switches between individual and group author mode. Switching to
// individual keeps only the first author; switching to group with no authors
// seeds one empty author.
func (s *ProjectStore) SetAuthorType(authorType types.AuthorType) {
	next := s.state
	next.AuthorType = authorType
	if authorType == types.AuthorIndividual && len(next.Authors) > 1 {
		next.Authors = next.Authors[:1:1]
	}
	if authorType == types.AuthorGroup && len(next.Authors) == 0 {
		next.Authors = []types.Author{{ID: newID()}}
	}
	s.state = next
}

// AddEntity appends a new entity with a fresh id and default values to the named
// collection and returns the assigned id. New installation steps start with one
// empty command.
func (s *ProjectStore) AddEntity(collection string) (string, error) {
	id := newID()
	next := s.state
	switch collection {
	case CollectionAuthors:
		next.Authors = appendEntity(next.Authors, types.Author{ID: id})
	case CollectionFeatures:
		next.Features = appendEntity(next.Features, types.Feature{ID: id})
	case CollectionInstallationSteps:
		next.InstallationSteps = appendEntity(next.InstallationSteps, types.InstallationStep{
			ID:       id,
			Commands: []types.Command{{ID: newID()}},
		})
	case CollectionCustomSections:
		next.CustomSections = appendEntity(next.CustomSections, types.ProjectSection{ID: id, IsExpanded: true})
	default:
		return "", &UnknownCollectionError{Collection: collection}
	}
	s.state = next
	return id, nil
}

// RemoveEntity drops the entity with the given id from the named collection.
// A missing id is a no-op.
func (s *ProjectStore) RemoveEntity(collection, id string) error {
	next := s.state
	switch collection {
	case CollectionAuthors:
		next.Authors = removeEntity(next.Authors, id, func(e types.Author) string { return e.ID })
	case CollectionFeatures:
		next.Features = removeEntity(next.Features, id, func(e types.Feature) string { return e.ID })
	case CollectionInstallationSteps:
		next.InstallationSteps = removeEntity(next.InstallationSteps, id, func(e types.InstallationStep) string { return e.ID })
	case CollectionCustomSections:
		next.CustomSections = removeEntity(next.CustomSections, id, func(e types.ProjectSection) string { return e.ID })
	default:
		return &UnknownCollectionError{Collection: collection}
	}
	s.state = next
	return nil
}

// UpdateEntity replaces one field of the entity with the given id in the named
// collection.
func (s *ProjectStore) UpdateEntity(collection, id, field, value string) error {
	next := s.state
	var err error
	switch collection {
	case CollectionAuthors:
		next.Authors = updateEntity(next.Authors, id, func(e types.Author) string { return e.ID },
			func(e types.Author) types.Author {
				switch field {
				case "name":
					e.Name = value
				case "githubUsername":
					e.GitHubUsername = value
				default:
					err = &UnknownFieldError{Field: field}
				}
				return e
			})
	case CollectionFeatures:
		next.Features = updateEntity(next.Features, id, func(e types.Feature) string { return e.ID },
			func(e types.Feature) types.Feature {
				if field != "text" {
					err = &UnknownFieldError{Field: field}
					return e
				}
				e.Text = value
				return e
			})
	case CollectionInstallationSteps:
		next.InstallationSteps = updateEntity(next.InstallationSteps, id, func(e types.InstallationStep) string { return e.ID },
			func(e types.InstallationStep) types.InstallationStep {
				switch field {
				case "title":
					e.Title = value
				case "description":
					e.Description = value
				default:
					err = &UnknownFieldError{Field: field}
				}
				return e
			})
	case CollectionCustomSections:
		next.CustomSections = updateEntity(next.CustomSections, id, func(e types.ProjectSection) string { return e.ID },
			func(e types.ProjectSection) types.ProjectSection {
				switch field {
				case "title":
					e.Title = value
				case "content":
					e.Content = value
				default:
					err = &UnknownFieldError{Field: field}
				}
				return e
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

// ToggleSection flips the presentation-only expanded flag of a custom section.
func (s *ProjectStore) ToggleSection(id string) {
	next := s.state
	next.CustomSections = updateEntity(next.CustomSections, id, func(e types.ProjectSection) string { return e.ID },
		func(e types.ProjectSection) types.ProjectSection {
			e.IsExpanded = !e.IsExpanded
			return e
		})
	s.state = next
}

// AddCommand appends a new empty command to the installation step with the given
// id and returns the command id.
func (s *ProjectStore) AddCommand(stepID string) string {
	id := newID()
	next := s.state
	next.InstallationSteps = updateEntity(next.InstallationSteps, stepID, func(e types.InstallationStep) string { return e.ID },
		func(e types.InstallationStep) types.InstallationStep {
			e.Commands = appendEntity(e.Commands, types.Command{ID: id})
			return e
		})
	s.state = next
	return id
}

// RemoveCommand drops a command from an installation step. A missing id is a
// no-op.
func (s *ProjectStore) RemoveCommand(stepID, commandID string) {
	next := s.state
	next.InstallationSteps = updateEntity(next.InstallationSteps, stepID, func(e types.InstallationStep) string { return e.ID },
		func(e types.InstallationStep) types.InstallationStep {
			e.Commands = removeEntity(e.Commands, commandID, func(c types.Command) string { return c.ID })
			return e
		})
	s.state = next
}

// UpdateCommand replaces the text of a command within an installation step.
func (s *ProjectStore) UpdateCommand(stepID, commandID, text string) {
	next := s.state
	next.InstallationSteps = updateEntity(next.InstallationSteps, stepID, func(e types.InstallationStep) string { return e.ID },
		func(e types.InstallationStep) types.InstallationStep {
			e.Commands = updateEntity(e.Commands, commandID, func(c types.Command) string { return c.ID },
				func(c types.Command) types.Command {
					c.Text = text
					return c
				})
			return e
		})
	s.state = next
}
