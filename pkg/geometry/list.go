package geometry

import (
	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

// List is an ordered collection of shapes searched linearly for the closest hit
type List struct {
	Objects []Shape
}

// NewList creates a list holding objects
func NewList(objects ...Shape) *List {
	return &List{Objects: objects}
}

// Add appends a shape to the list
func (l *List) Add(object Shape) {
	l.Objects = append(l.Objects, object)
}

// Len returns the number of direct members
func (l *List) Len() int {
	return len(l.Objects)
}

// Hit tests every member, narrowing tMax to the closest hit found so far
func (l *List) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, ok := object.Hit(ray, tMin, closestSoFar); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// SpecialList is a List whose hits are tagged as belonging to the scene's special object
type SpecialList struct {
	List
}

// NewSpecialList creates a special list holding objects
func NewSpecialList(objects ...Shape) *SpecialList {
	return &SpecialList{List: List{Objects: objects}}
}

// Hit tests the members like List and marks any hit as special
func (s *SpecialList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	hit, ok := s.List.Hit(ray, tMin, tMax)
	if ok {
		hit.SpecialObject = true
	}
	return hit, ok
}
