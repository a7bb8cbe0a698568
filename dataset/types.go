// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: on-disk dataset records, formats, validation and sentinel errors.

// Package dataset reads and writes logistics networks as YAML or JSON
// documents and turns them into core.Graph stores.
//
// A document lists nodes and routes with the field names used throughout the
// system (source_id, target_id, current_stock, ...). Records are checked with
// struct tags before a graph is built; graph-level rules such as unique IDs
// and known route endpoints are enforced by core when the graph is assembled.
package dataset

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors.
var (
	// ErrInvalidDataset wraps record validation and decoding failures.
	ErrInvalidDataset = errors.New("dataset: invalid dataset")

	// ErrUnknownFormat is returned for a format or file extension that is
	// neither YAML nor JSON.
	ErrUnknownFormat = errors.New("dataset: unknown format")
)

// Format selects the document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatOf infers the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Dataset is a named network document.
type Dataset struct {
	Name   string        `json:"name" yaml:"name"`
	Nodes  []NodeRecord  `json:"nodes" yaml:"nodes" validate:"dive"`
	Routes []RouteRecord `json:"routes" yaml:"routes" validate:"dive"`
}

// NodeRecord is a facility as stored in a document. Ports usually carry
// current_load, every other category current_stock; when both are present
// current_stock wins.
type NodeRecord struct {
	ID           string   `json:"id" yaml:"id" validate:"required"`
	Name         string   `json:"name" yaml:"name"`
	Type         string   `json:"type" yaml:"type"`
	Location     Location `json:"location" yaml:"location"`
	Capacity     float64  `json:"capacity" yaml:"capacity" validate:"gte=0"`
	CurrentStock *float64 `json:"current_stock,omitempty" yaml:"current_stock,omitempty" validate:"omitempty,gte=0"`
	CurrentLoad  *float64 `json:"current_load,omitempty" yaml:"current_load,omitempty" validate:"omitempty,gte=0"`
	RiskLevel    string   `json:"risk_level,omitempty" yaml:"risk_level,omitempty" validate:"omitempty,oneof=low medium high"`
}

// Location is a geographic position.
type Location struct {
	Lat  float64 `json:"lat" yaml:"lat" validate:"gte=-90,lte=90"`
	Lng  float64 `json:"lng" yaml:"lng" validate:"gte=-180,lte=180"`
	City string  `json:"city" yaml:"city"`
}

// RouteRecord is a directed route as stored in a document.
type RouteRecord struct {
	ID        string  `json:"id" yaml:"id" validate:"required"`
	SourceID  string  `json:"source_id" yaml:"source_id" validate:"required"`
	TargetID  string  `json:"target_id" yaml:"target_id" validate:"required"`
	RouteType string  `json:"route_type,omitempty" yaml:"route_type,omitempty" validate:"omitempty,oneof=road rail sea air"`
	Distance  float64 `json:"distance" yaml:"distance" validate:"gte=0"`
	Cost      float64 `json:"cost" yaml:"cost" validate:"gte=0"`
	Duration  float64 `json:"duration" yaml:"duration" validate:"gte=0"`
	RiskScore float64 `json:"risk_score" yaml:"risk_score" validate:"gte=0,lte=1"`
}

var validate = validator.New()

// Validate checks every record against its field rules.
func (d *Dataset) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}
	return nil
}
