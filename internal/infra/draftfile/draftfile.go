// Package draftfile parses YAML files describing items to create in bulk.
//
//	items:
//	  - kind: epic
//	    name: Release
//	    subtasks:
//	      - name: Build
//	        start: 2024-03-01T09:00
//	        duration: 30m
//	  - name: Write notes
//	    status: in_progress
//	  - kind: sub
//	    epic: 4
//	    name: Follow up
package draftfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/taskboard/internal/domain"
)

type fileDoc struct {
	Items []itemDoc `yaml:"items"`
}

type itemDoc struct {
	Kind        string    `yaml:"kind"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Status      string    `yaml:"status"`
	Start       string    `yaml:"start"`
	Duration    string    `yaml:"duration"`
	SubTasks    []itemDoc `yaml:"subtasks"`
	Epic        int       `yaml:"epic"`
}

// ParseFile reads and parses the draft file at path.
func ParseFile(path string) ([]domain.ItemDraft, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read draft file: %w", err)
	}
	return Parse(bytes.NewReader(content))
}

// Parse reads drafts from r. Unknown keys are rejected and every draft is
// validated before returning.
func Parse(r io.Reader) ([]domain.ItemDraft, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc fileDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.ErrEmptyDraftFile
		}
		return nil, fmt.Errorf("parse draft file: %w", err)
	}
	if len(doc.Items) == 0 {
		return nil, domain.ErrNoDrafts
	}

	drafts := make([]domain.ItemDraft, 0, len(doc.Items))
	for i, item := range doc.Items {
		draft, err := item.toDraft(domain.KindTask)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		if err := draft.Validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		drafts = append(drafts, draft)
	}
	return drafts, nil
}

func (d itemDoc) toDraft(defaultKind domain.Kind) (domain.ItemDraft, error) {
	kind := defaultKind
	if d.Kind != "" {
		k, err := domain.ParseKindName(d.Kind)
		if err != nil {
			return domain.ItemDraft{}, err
		}
		kind = k
	}

	draft := domain.ItemDraft{
		Kind:        kind,
		Name:        d.Name,
		Description: d.Description,
		EpicID:      d.Epic,
	}
	if d.Status != "" {
		st, err := domain.ParseStatus(d.Status)
		if err != nil {
			return domain.ItemDraft{}, err
		}
		draft.Status = st
	}
	if d.Start != "" {
		start, err := domain.ParseDateTime(d.Start)
		if err != nil {
			return domain.ItemDraft{}, err
		}
		draft.Start = start
	}
	duration, err := domain.ParseFlexiblePeriod(d.Duration)
	if err != nil {
		return domain.ItemDraft{}, err
	}
	draft.Duration = duration

	for _, sub := range d.SubTasks {
		child, err := sub.toDraft(domain.KindSubTask)
		if err != nil {
			return domain.ItemDraft{}, fmt.Errorf("%q: %w", d.Name, err)
		}
		draft.SubTasks = append(draft.SubTasks, child)
	}
	return draft, nil
}
