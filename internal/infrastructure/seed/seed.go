// Package seed loads the starting author directory and course collection
// from a YAML file.
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	authormodel "course-catalog-backend/internal/domains/author/model"
	coursemodel "course-catalog-backend/internal/domains/course/model"
)

// Catalog is the content of a seed file.
//
//	authors:
//	  - id: 27cc3006-e93a-4748-8ca8-73d06aa93b6d
//	    name: Vasiliy Dobkin
//	courses:
//	  - id: de5aaa59-90f5-4dbc-b8a9-aaf205c551ba
//	    title: JavaScript
//	    description: ...
//	    creation_date: 08/03/2021
//	    duration: 160
//	    authors: [27cc3006-e93a-4748-8ca8-73d06aa93b6d]
type Catalog struct {
	Authors []authormodel.Author `yaml:"authors"`
	Courses []coursemodel.Course `yaml:"courses"`
}

type AuthorPublisher interface {
	Publish(ctx context.Context, author authormodel.Author) error
}

type CourseAdder interface {
	Add(ctx context.Context, course coursemodel.Course) error
}

// LoadFile reads and parses the seed file at path
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file %s: %w", path, err)
	}

	catalog, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", path, err)
	}
	return catalog, nil
}

// Parse decodes a seed document. Unknown keys are rejected.
func Parse(data []byte) (*Catalog, error) {
	var catalog Catalog

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&catalog); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &catalog, nil
}

// Apply publishes every author, then adds every course
func Apply(ctx context.Context, catalog *Catalog, authors AuthorPublisher, courses CourseAdder) error {
	for _, a := range catalog.Authors {
		if err := authors.Publish(ctx, a); err != nil {
			return fmt.Errorf("seeding author %q: %w", a.ID, err)
		}
	}
	for _, c := range catalog.Courses {
		if err := courses.Add(ctx, c); err != nil {
			return fmt.Errorf("seeding course %q: %w", c.ID, err)
		}
	}
	return nil
}
