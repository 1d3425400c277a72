// SPDX-License-Identifier: MIT
// Package: wgraph/loader
//
// document.go - wire structs and their decoding.
//
// Two graph shapes are accepted:
//
//	named   {"id": 1, "description": "...", "nodes": ["A","B"],
//	         "edges": [{"from":"A","to":"B","weight":3}]}
//	legacy  {"vertices": 3, "name": "...", "description": "...",
//	         "edges": [{"source":0,"destination":1,"weight":3}]}
//
// Optional fields are pointers so absence and zero stay distinguishable;
// required fields carry `validate:"required"` tags.

package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Root keys selecting the document shape.
const (
	keyGraphs   = "graphs"
	keyDatasets = "datasets"
)

// Defaults applied to absent optional fields.
const (
	defaultLegacyName  = "Unnamed"
	defaultDescription = ""
)

var validate = newValidator()

// newValidator reports field paths by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

type namedGraph struct {
	ID          *int        `json:"id"`
	Description *string     `json:"description"`
	Nodes       []string    `json:"nodes" validate:"required"`
	Edges       []namedEdge `json:"edges" validate:"required,dive"`
}

type namedEdge struct {
	From   *string `json:"from" validate:"required"`
	To     *string `json:"to" validate:"required"`
	Weight *int64  `json:"weight" validate:"required"`
}

type legacyGraph struct {
	Vertices    *int         `json:"vertices" validate:"required"`
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	Edges       []legacyEdge `json:"edges" validate:"omitempty,dive"`
}

type legacyEdge struct {
	Source      *int   `json:"source" validate:"required"`
	Destination *int   `json:"destination" validate:"required"`
	Weight      *int64 `json:"weight" validate:"required"`
}

// document is a decoded root object plus its raw bytes.
type document struct {
	raw  json.RawMessage
	keys map[string]json.RawMessage
}

// shape names the detected root layout, for logs.
func (d document) shape() string {
	switch {
	case d.has(keyGraphs):
		return keyGraphs
	case d.has(keyDatasets):
		return keyDatasets
	default:
		return "single"
	}
}

func (d document) has(key string) bool {
	_, ok := d.keys[key]
	return ok
}

// elements splits the array stored under key.
func (d document) elements(key string) ([]json.RawMessage, error) {
	raw := d.keys[key]
	if isNull(raw) {
		return nil, fmt.Errorf("%s: %w: expected an array, got null", key, ErrMalformedDocument)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", key, ErrMalformedDocument, err)
	}

	return items, nil
}

// decodeDocument reads exactly one JSON object from r.
func decodeDocument(r io.Reader) (document, error) {
	dec := json.NewDecoder(r)
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return document{}, ErrEmptyDocument
		}
		return document{}, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return document{}, fmt.Errorf("%w: trailing data after root value", ErrMalformedDocument)
	}
	if isNull(raw) {
		return document{}, fmt.Errorf("%w: root is null", ErrMalformedDocument)
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return document{}, fmt.Errorf("%w: root must be an object: %w", ErrMalformedDocument, err)
	}

	return document{raw: raw, keys: keys}, nil
}

// decodeNamed unmarshals and checks one named-format graph.
func decodeNamed(raw json.RawMessage) (*namedGraph, error) {
	var ng namedGraph
	if err := decodeStrict(raw, &ng); err != nil {
		return nil, err
	}

	return &ng, nil
}

// decodeLegacy unmarshals and checks one legacy-format graph.
func decodeLegacy(raw json.RawMessage) (*legacyGraph, error) {
	var lg legacyGraph
	if err := decodeStrict(raw, &lg); err != nil {
		return nil, err
	}

	return &lg, nil
}

func decodeStrict(raw json.RawMessage, dst any) error {
	if isNull(raw) {
		return fmt.Errorf("%w: expected an object, got null", ErrMalformedDocument)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	if err := validate.Struct(dst); err != nil {
		return missingFields(err)
	}

	return nil
}

// missingFields turns validator output into an ErrMissingField listing
// every offending JSON path.
func missingFields(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	paths := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		ns := fe.Namespace()
		if _, rest, ok := strings.Cut(ns, "."); ok {
			ns = rest
		}
		paths = append(paths, ns)
	}

	return fmt.Errorf("%s: %w", strings.Join(paths, ", "), ErrMissingField)
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
