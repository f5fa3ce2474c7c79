package value

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMarshalJSON(t *testing.T) {
	v := FromKeyVals([]KeyVal{
		{Key: "z", Val: FromInt(1)},
		{Key: "a", Val: FromSlice([]*Value{FromFloat(1.5), FromString("x\"y"), Null(), FromBool(false)})},
	})
	d, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"z":1,"a":[1.5,"x\"y",null,false]}`
	if string(d) != want {
		t.Errorf("got %s want %s", d, want)
	}

	if _, err := FromFloat(math.Inf(1)).MarshalJSON(); !errors.Is(err, ErrJSON) {
		t.Errorf("expected ErrJSON for infinity, got %v", err)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	in := `{"z": 1, "a": [1.5, "s", null, true, {"k": 1e3}], "big": 12345678901234567890}`
	got := &Value{}
	if err := json.Unmarshal([]byte(in), got); err != nil {
		t.Fatal(err)
	}
	want := FromKeyVals([]KeyVal{
		{Key: "z", Val: FromInt(1)},
		{Key: "a", Val: FromSlice([]*Value{
			FromFloat(1.5),
			FromString("s"),
			Null(),
			FromBool(true),
			FromKeyVals([]KeyVal{{Key: "k", Val: FromFloat(1000)}}),
		})},
		{Key: "big", Val: FromFloat(12345678901234567890)},
	})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
