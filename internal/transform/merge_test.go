package transform

import (
	"reflect"
	"testing"

	"github.com/ryanmaule/greenbutton-to-homeassistant-sql/pkg/models"
)

func TestMergePrimaryWinsOnCollision(t *testing.T) {
	primary := []models.Reading{
		{Start: 100, ConsumptionKWh: 1.0},
		{Start: 200, ConsumptionKWh: 2.0},
	}
	secondary := []models.Reading{
		{Start: 200, ConsumptionKWh: 9.9}, // overlaps, must be discarded
		{Start: 300, ConsumptionKWh: 3.0},
	}

	merged := Merge(primary, secondary)

	if len(merged) != 3 {
		t.Fatalf("merged length = %d, want 3", len(merged))
	}
	for _, r := range merged {
		if r.Start == 200 && r.ConsumptionKWh != 2.0 {
			t.Errorf("secondary value survived collision at 200: %f", r.ConsumptionKWh)
		}
	}
	if merged[2].Start != 300 || merged[2].ConsumptionKWh != 3.0 {
		t.Errorf("gap-filling reading missing: %+v", merged[2])
	}
}

func TestMergeWithSelfIsIdentity(t *testing.T) {
	primary := []models.Reading{
		{Start: 100, ConsumptionKWh: 1.0},
		{Start: 200, ConsumptionKWh: 2.0},
		{Start: 300, ConsumptionKWh: 3.0},
	}

	merged := Merge(primary, primary)

	if !reflect.DeepEqual(merged, primary) {
		t.Errorf("self-merge changed sequence: %+v", merged)
	}
}

func TestMergeResortsOutput(t *testing.T) {
	primary := []models.Reading{
		{Start: 500, ConsumptionKWh: 5.0},
		{Start: 600, ConsumptionKWh: 6.0},
	}
	secondary := []models.Reading{
		{Start: 100, ConsumptionKWh: 1.0},
		{Start: 550, ConsumptionKWh: 5.5},
	}

	merged := Merge(primary, secondary)

	want := []int64{100, 500, 550, 600}
	for i, start := range want {
		if merged[i].Start != start {
			t.Fatalf("merged[%d].Start = %d, want %d", i, merged[i].Start, start)
		}
	}
}

func TestMergeEmptySides(t *testing.T) {
	readings := []models.Reading{{Start: 100, ConsumptionKWh: 1.0}}

	if got := Merge(readings, nil); len(got) != 1 {
		t.Errorf("merge with empty secondary = %d readings", len(got))
	}
	if got := Merge(nil, readings); len(got) != 1 {
		t.Errorf("merge with empty primary = %d readings", len(got))
	}
	if got := Merge(nil, nil); len(got) != 0 {
		t.Errorf("merge of nothing = %d readings", len(got))
	}
}
