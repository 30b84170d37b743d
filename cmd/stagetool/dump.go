package main

import (
	"github.com/morivert/scrollstage/internal/timeline"
	"github.com/morivert/scrollstage/internal/viewport"
	"github.com/morivert/scrollstage/pkg/math"
)

type transformRecord struct {
	Position [3]float32 `yaml:"position,flow"`
	Rotation [4]float32 `yaml:"rotation,flow"`
	Scale    [3]float32 `yaml:"scale,flow"`
}

type partRecord struct {
	Name       string          `yaml:"name"`
	Visibility float32         `yaml:"visibility"`
	Transform  transformRecord `yaml:"transform"`
}

type poseRecord struct {
	Progress float32               `yaml:"progress"`
	Camera   map[string][3]float32 `yaml:"camera"`
	Subject  transformRecord       `yaml:"subject"`
	Parts    []partRecord          `yaml:"parts"`
	Blends   map[string]float32    `yaml:"blends"`
}

func toRecord(t math.Transform) transformRecord {
	return transformRecord{
		Position: t.Position.Array(),
		Rotation: [4]float32{t.Rotation.X, t.Rotation.Y, t.Rotation.Z, t.Rotation.W},
		Scale:    t.Scale.Array(),
	}
}

// samplePoses evaluates n evenly spaced progress values, endpoints included.
func samplePoses(e *timeline.Engine, n int, profile viewport.Profile, spins timeline.Spins) []poseRecord {
	if n < 2 {
		n = 2
	}
	phases := e.Phases()
	records := make([]poseRecord, 0, n)
	for i := 0; i < n; i++ {
		p := float32(i) / float32(n-1)
		pose := e.Evaluate(p, profile, spins)

		rec := poseRecord{
			Progress: pose.Progress,
			Camera: map[string][3]float32{
				"position": pose.Camera.Position.Array(),
				"target":   pose.Camera.Target.Array(),
			},
			Subject: toRecord(pose.Subject),
			Blends: map[string]float32{
				"hero":     pose.Blends.Hero,
				"showcase": pose.Blends.Showcase,
				"used":     pose.Blends.Used,
			},
		}
		for id, ph := range phases {
			rec.Blends[ph.Name] = pose.Blends.Phase[id]
		}
		for part := timeline.Part(0); part < timeline.PartCount; part++ {
			st := pose.Parts[part]
			rec.Parts = append(rec.Parts, partRecord{
				Name:       part.String(),
				Visibility: st.Visibility,
				Transform:  toRecord(st.Transform),
			})
		}
		records = append(records, rec)
	}
	return records
}
