package systems

import (
	"math"
	"testing"

	"github.com/automoto/vacuumarena/components"
	"github.com/automoto/vacuumarena/shared/gamemath"
)

func yawDir(deg float64) gamemath.Vec3 {
	r := deg * math.Pi / 180
	return gamemath.V3(math.Sin(r), 0, math.Cos(r))
}

func TestSteerLookTakesTheShortWay(t *testing.T) {
	tests := []struct {
		name     string
		yaw      float64
		target   float64
		wantSign float64
		wantErr  float64
	}{
		{"across zero to the left", 10, 350, -1, 20},
		{"across zero to the right", 350, 10, 1, 20},
		{"across 180", 170, 190, 1, 20},
		{"plain right turn", 0, 90, 1, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &components.TransformData{Yaw: tt.yaw}
			var in components.InputData
			if err := steerLook(tr, &in, yawDir(tt.target), 0); math.Abs(err-tt.wantErr) > 1e-6 {
				t.Errorf("aim error = %v, want %v", err, tt.wantErr)
			}
			if math.Signbit(in.Look.X) != math.Signbit(tt.wantSign) || in.Look.X == 0 {
				t.Errorf("Look.X = %v, want sign %v", in.Look.X, tt.wantSign)
			}
		})
	}
}

func TestSteerLookConverges(t *testing.T) {
	tr := &components.TransformData{Yaw: 300}
	dir := yawDir(60).Add(gamemath.V3(0, 0.5, 0))

	var err float64
	for i := 0; i < 40; i++ {
		var in components.InputData
		err = steerLook(tr, &in, dir, 0)
		ApplyLook(tr, &in)
	}
	if err > 1e-6 {
		t.Errorf("aim error = %v after settling", err)
	}
	if math.Abs(tr.Yaw-60) > 1e-6 {
		t.Errorf("Yaw = %v, want 60", tr.Yaw)
	}
	if tr.Pitch <= 0 {
		t.Errorf("Pitch = %v, want looking up", tr.Pitch)
	}
}
