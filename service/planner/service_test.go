package planner

import (
	"testing"

	"github.com/elC0mpa/ri-doctor/model"
	"github.com/stretchr/testify/assert"
)

func key(instanceType, zone string) model.InstanceKey {
	return model.InstanceKey{InstanceType: instanceType, AvailabilityZone: zone}
}

func TestBuildPlan(t *testing.T) {
	tests := []struct {
		name  string
		clean model.Mismatch
		want  model.Plan
	}{
		{
			name:  "empty mismatch",
			clean: model.Mismatch{},
			want:  model.Plan{},
		},
		{
			name: "single donor covers single recipient",
			clean: model.Mismatch{
				key("m4.large", "us-east-1a"): 6,
				key("m4.large", "us-east-1b"): -6,
			},
			want: model.Plan{
				{InstanceType: "m4.large", SourceZone: "us-east-1a", DestZone: "us-east-1b", Count: 6},
			},
		},
		{
			name: "deficit split across donors in zone order",
			clean: model.Mismatch{
				key("m4.large", "us-east-1a"): 3,
				key("m4.large", "us-east-1b"): -6,
				key("m4.large", "us-east-1c"): 5,
			},
			want: model.Plan{
				{InstanceType: "m4.large", SourceZone: "us-east-1a", DestZone: "us-east-1b", Count: 3},
				{InstanceType: "m4.large", SourceZone: "us-east-1c", DestZone: "us-east-1b", Count: 3},
			},
		},
		{
			name: "donor shortfall leaves deficit unplanned",
			clean: model.Mismatch{
				key("m4.large", "us-east-1a"): 2,
				key("m4.large", "us-east-1b"): -6,
			},
			want: model.Plan{
				{InstanceType: "m4.large", SourceZone: "us-east-1a", DestZone: "us-east-1b", Count: 2},
			},
		},
		{
			name: "only donors yields no actions",
			clean: model.Mismatch{
				key("m4.large", "us-east-1a"):  4,
				key("c4.xlarge", "us-east-1b"): 1,
			},
			want: model.Plan{},
		},
		{
			name: "only recipients yields no actions",
			clean: model.Mismatch{
				key("m4.large", "us-east-1a"): -4,
			},
			want: model.Plan{},
		},
		{
			name: "types never mix",
			clean: model.Mismatch{
				key("c4.xlarge", "us-east-1a"): 9,
				key("m4.large", "us-east-1b"):  -6,
			},
			want: model.Plan{},
		},
		{
			name: "recipients served in zone order",
			clean: model.Mismatch{
				key("m4.large", "us-east-1a"): 6,
				key("m4.large", "us-east-1b"): -4,
				key("m4.large", "us-east-1d"): -4,
			},
			want: model.Plan{
				{InstanceType: "m4.large", SourceZone: "us-east-1a", DestZone: "us-east-1b", Count: 4},
				{InstanceType: "m4.large", SourceZone: "us-east-1a", DestZone: "us-east-1d", Count: 2},
			},
		},
		{
			name: "multiple types planned independently",
			clean: model.Mismatch{
				key("c4.xlarge", "us-east-1a"): -2,
				key("c4.xlarge", "us-east-1c"): 2,
				key("m4.large", "us-east-1a"):  1,
				key("m4.large", "us-east-1b"):  -1,
			},
			want: model.Plan{
				{InstanceType: "c4.xlarge", SourceZone: "us-east-1c", DestZone: "us-east-1a", Count: 2},
				{InstanceType: "m4.large", SourceZone: "us-east-1a", DestZone: "us-east-1b", Count: 1},
			},
		},
	}

	svc := NewService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.BuildPlan(tt.clean)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildPlanRespectsBounds(t *testing.T) {
	svc := NewService()

	clean := model.Mismatch{
		key("m4.large", "us-east-1a"): 5,
		key("m4.large", "us-east-1b"): -3,
		key("m4.large", "us-east-1c"): -7,
		key("m4.large", "us-east-1d"): 2,
	}

	plan := svc.BuildPlan(clean)

	movedFrom := make(map[model.InstanceKey]int)
	movedTo := make(map[model.InstanceKey]int)
	for _, action := range plan {
		assert.Positive(t, action.Count)
		movedFrom[key(action.InstanceType, action.SourceZone)] += action.Count
		movedTo[key(action.InstanceType, action.DestZone)] += action.Count
	}

	for donor, moved := range movedFrom {
		assert.LessOrEqual(t, moved, clean[donor], "donor %v over-drained", donor)
	}
	for recipient, moved := range movedTo {
		assert.LessOrEqual(t, moved, -clean[recipient], "recipient %v over-filled", recipient)
	}
}

func TestBuildPlanDeterministic(t *testing.T) {
	svc := NewService()

	clean := model.Mismatch{
		key("m4.large", "us-east-1a"):  4,
		key("m4.large", "us-east-1b"):  -2,
		key("m4.large", "us-east-1c"):  -2,
		key("c4.xlarge", "us-east-1a"): -1,
		key("c4.xlarge", "us-east-1b"): 1,
	}

	first := svc.BuildPlan(clean)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, svc.BuildPlan(clean))
	}
}

func TestBuildPlanDoesNotMutateInput(t *testing.T) {
	svc := NewService()

	clean := model.Mismatch{
		key("m4.large", "us-east-1a"): 6,
		key("m4.large", "us-east-1b"): -6,
	}
	snapshot := clean.Clone()

	svc.BuildPlan(clean)
	assert.Equal(t, snapshot, clean)
}
