package gradebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrade_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    Grade
		wantErr bool
	}{
		{name: "points", data: `90`, want: Graded(90)},
		{name: "zero", data: `0`, want: Graded(0)},
		{name: "not graded", data: `"Not Graded"`, want: Ungraded()},
		{name: "other string", data: `"ninety"`, wantErr: true},
		{name: "negative", data: `-1`, wantErr: true},
		{name: "fraction", data: `89.5`, wantErr: true},
		{name: "null", data: `null`, wantErr: true},
		{name: "object", data: `{"value": 1}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Grade
			err := got.UnmarshalJSON([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseGrade(t *testing.T) {
	tests := []struct {
		in      string
		want    Grade
		wantErr bool
	}{
		{in: "42", want: Graded(42)},
		{in: " 7 ", want: Graded(7)},
		{in: "ungraded", want: Ungraded()},
		{in: "Not Graded", want: Ungraded()},
		{in: "-", want: Ungraded()},
		{in: "-3", want: Graded(-3)}, // rejected later by validation
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGrade(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    Document
		wantErr bool
	}{
		{
			name: "nested schema",
			data: `{"Math101": {"Ann": {"HW1": {"value": 90, "max_points": 100}, "HW2": {"value": "Not Graded", "max_points": null}}}}`,
			want: Document{"Math101": Class{"Ann": StudentRecord{
				"HW1": {Value: Graded(90), MaxPoints: Points(100)},
				"HW2": {Value: Ungraded()},
			}}},
		},
		{name: "empty class", data: `{"Math101": {}}`, want: Document{"Math101": Class{}}},
		{name: "null class", data: `{"Math101": null}`, want: Document{"Math101": Class{}}},
		{name: "empty document", data: `{}`, want: Document{}},
		{name: "legacy flat schema", data: `{"Math101": {"Ann": {"HW1": 90}}}`, wantErr: true},
		{name: "legacy score key", data: `{"Math101": {"Ann": {"HW1": {"score": 90, "max_points": 100}}}}`, wantErr: true},
		{name: "missing value", data: `{"Math101": {"Ann": {"HW1": {"max_points": 100}}}}`, wantErr: true},
		{name: "negative max points", data: `{"Math101": {"Ann": {"HW1": {"value": 1, "max_points": -5}}}}`, wantErr: true},
		{name: "array", data: `[]`, wantErr: true},
		{name: "truncated", data: `{"Math101": {`, wantErr: true},
		{name: "empty file", data: ``, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.data))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedDocument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode(t *testing.T) {
	doc := Document{"Math101": Class{"Ann": StudentRecord{
		"HW2": {Value: Ungraded()},
		"HW1": {Value: Graded(90), MaxPoints: Points(100)},
	}}}
	want := `{
    "Math101": {
        "Ann": {
            "HW1": {
                "value": 90,
                "max_points": 100
            },
            "HW2": {
                "value": "Not Graded",
                "max_points": null
            }
        }
    }
}
`
	got, err := Encode(doc)
	require.NoError(t, err)
	assert.Equal(t, want, string(got))

	empty, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(empty))
}

func TestEncode_noHTMLEscaping(t *testing.T) {
	data := `{
    "R&D <lab>": {
        "Ann": {
            "Q&A": {
                "value": 3,
                "max_points": 5
            }
        }
    }
}
`
	doc, err := Decode([]byte(data))
	require.NoError(t, err)

	got, err := Encode(doc)
	require.NoError(t, err)
	assert.Equal(t, data, string(got))
}

func TestDocument_Clone(t *testing.T) {
	doc := Document{"Math101": Class{"Ann": StudentRecord{"HW1": {Value: Graded(90), MaxPoints: Points(100)}}}}
	clone := doc.Clone()
	require.Equal(t, doc, clone)

	*clone["Math101"]["Ann"]["HW1"].MaxPoints = 50
	clone["Math101"]["Ann"]["HW2"] = Score{}
	delete(clone["Math101"], "Ann")

	assert.Equal(t, 100, *doc["Math101"]["Ann"]["HW1"].MaxPoints)
	assert.Len(t, doc["Math101"]["Ann"], 1)
	assert.Contains(t, doc["Math101"], "Ann")
}

func TestClass_Assignments(t *testing.T) {
	cls := Class{
		"Bob": StudentRecord{"HW2": {}, "Quiz": {Value: Graded(3)}},
		"Ann": StudentRecord{"HW1": {MaxPoints: Points(10)}, "HW2": {MaxPoints: Points(20)}},
	}
	assert.Equal(t, []string{"HW1", "HW2", "Quiz"}, cls.Assignments())
	assert.Equal(t, []string{"Ann", "Bob"}, cls.Students())
	assert.True(t, cls.HasAssignment("Quiz"))
	assert.False(t, cls.HasAssignment("Final"))
	assert.Equal(t, Points(20), cls.MaxPoints("HW2"))
	assert.Nil(t, cls.MaxPoints("Quiz"))
	assert.Empty(t, Class(nil).Assignments())
}

func TestSuggest(t *testing.T) {
	candidates := []string{"Ann", "Bob", "Charlotte"}
	assert.Equal(t, "Ann", suggest("ann", candidates))
	assert.Equal(t, "Charlotte", suggest("Charlote", candidates))
	assert.Equal(t, "", suggest("Zed", candidates))
	assert.Equal(t, "", suggest("Ann", nil))
}
