package geometry

import (
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/df07/go-interactive-raytracer/pkg/material"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

var testMaterial = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
