//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package router composes registered format conversions into multi-hop
// conversions.
//
// A Registry holds named formats and directed edges between them. Transform
// resolves the shortest edge path through every requested waypoint before it
// runs a single edge, so a conversion either has a complete route or does not
// start at all.
package router

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// Kind tells hosting code how to read or write a serialized format.
type Kind string

// Serialization kinds.
const (
	KindText       Kind = "text"
	KindStructured Kind = "json-structured"
	KindBinary     Kind = "binary"
)

// Format describes a registered format.
type Format struct {
	Name        string
	Description string
	Kind        Kind
}

// EdgeFunc converts the value of one format into the value of another.
// It may block; the context is passed on unchanged.
type EdgeFunc func(ctx context.Context, in any, p *Params) (any, error)

// Edge is a direction-specific conversion between two formats.
type Edge struct {
	From string
	To   string
	Fn   EdgeFunc
}

func (e Edge) String() string { return e.From + "->" + e.To }

// Registry stores formats and edges.
type Registry struct {
	mx      sync.RWMutex
	formats map[string]*Format
	order   []string
	edges   map[string][]Edge // outgoing edges, in registration order
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		formats: map[string]*Format{},
		edges:   map[string][]Edge{},
	}
}

// Register adds a format. A name can only be registered once.
func (r *Registry) Register(f Format) error {
	if f.Name == "" {
		return goerrors.New("format without name", goerrors.CategoryBadInput).WithTextCode(TextCodeInvalidFormat)
	}
	r.mx.Lock()
	defer r.mx.Unlock()
	if _, found := r.formats[f.Name]; found {
		return goerrors.New(fmt.Sprintf("format %q already registered", f.Name), goerrors.CategoryConflict).
			WithTextCode(TextCodeInvalidFormat).
			WithMetadata(map[string]any{"format": f.Name})
	}
	r.formats[f.Name] = &f
	r.order = append(r.order, f.Name)
	return nil
}

// AddEdge adds a conversion from one registered format to another.
func (r *Registry) AddEdge(from, to string, fn EdgeFunc) error {
	r.mx.Lock()
	defer r.mx.Unlock()
	for _, name := range []string{from, to} {
		if _, found := r.formats[name]; !found {
			return unknownFormat(name)
		}
	}
	r.edges[from] = append(r.edges[from], Edge{From: from, To: to, Fn: fn})
	return nil
}

// Lookup returns the format with the given name.
func (r *Registry) Lookup(name string) (Format, error) {
	r.mx.RLock()
	defer r.mx.RUnlock()
	if f, found := r.formats[name]; found {
		return *f, nil
	}
	return Format{}, unknownFormat(name)
}

// Formats returns all formats in registration order.
func (r *Registry) Formats() []Format {
	r.mx.RLock()
	defer r.mx.RUnlock()
	result := make([]Format, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, *r.formats[name])
	}
	return result
}

// Edges returns the outgoing edges of a format.
func (r *Registry) Edges(from string) []Edge {
	r.mx.RLock()
	defer r.mx.RUnlock()
	return slices.Clone(r.edges[from])
}

// Path returns the shortest sequence of edges leading from one format to
// another. Among paths of equal length, the one using earlier registered
// edges wins. A format reaches itself with an empty path.
func (r *Registry) Path(from, to string) ([]Edge, error) {
	r.mx.RLock()
	defer r.mx.RUnlock()
	for _, name := range []string{from, to} {
		if _, found := r.formats[name]; !found {
			return nil, unknownFormat(name)
		}
	}
	if from == to {
		return nil, nil
	}
	via := map[string]Edge{from: {}}
	queue := []string{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range r.edges[cur] {
			if _, seen := via[e.To]; seen {
				continue
			}
			via[e.To] = e
			if e.To == to {
				return backtrack(via, from, to), nil
			}
			queue = append(queue, e.To)
		}
	}
	return nil, noPath(from, to)
}

func backtrack(via map[string]Edge, from, to string) []Edge {
	var result []Edge
	for cur := to; cur != from; {
		e := via[cur]
		result = append(result, e)
		cur = e.From
	}
	slices.Reverse(result)
	return result
}

// Resolve computes the edges leading from a format through all given
// waypoints. It fails if any part of the route is missing.
func (r *Registry) Resolve(from string, path []string) ([]Edge, error) {
	if _, err := r.Lookup(from); err != nil {
		return nil, err
	}
	var result []Edge
	cur := from
	for _, next := range path {
		edges, err := r.Path(cur, next)
		if err != nil {
			return nil, err
		}
		result = append(result, edges...)
		cur = next
	}
	return result, nil
}

// Transform converts src, a value of format from, along the given path of
// formats. The value of the last format in path is returned. Edges run
// strictly one after the other; an edge error is returned unchanged.
// The edges get a copy of p that starts without reader state, so nothing of
// one conversion leaks into the next one.
func (r *Registry) Transform(ctx context.Context, src any, from string, path []string, p *Params) (any, error) {
	var run Params
	if p != nil {
		run = *p
	}
	run.Reader = nil
	p = &run
	edges, err := r.Resolve(from, path)
	if err != nil {
		return nil, err
	}
	log := p.Logger.Clone().Str("run", uuid.NewString()).Child()
	log.Debug().Str("from", from).Str("path", strings.Join(path, ",")).Str("route", routeString(edges)).Msg("Route")
	val := src
	for i, e := range edges {
		log.Debug().Int("step", i+1).Str("edge", e.String()).Msg("Edge")
		val, err = e.Fn(ctx, val, p)
		if err != nil {
			log.Debug().Str("edge", e.String()).Err(err).Msg("Edge failed")
			return nil, err
		}
	}
	return val, nil
}

func routeString(edges []Edge) string {
	if len(edges) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(edges[0].From)
	for _, e := range edges {
		sb.WriteString("->")
		sb.WriteString(e.To)
	}
	return sb.String()
}
