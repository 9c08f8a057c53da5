package main

import (
	"reflect"
	"testing"
)

const testID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

func TestRewriteDirectTaskLookupArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"taskspark"},
			want: []string{"taskspark"},
		},
		{
			name: "direct task id first token",
			in:   []string{"taskspark", testID},
			want: []string{"taskspark", "show", testID},
		},
		{
			name: "direct task id after value flag",
			in:   []string{"taskspark", "--dir", "./tmp-test-dir", testID},
			want: []string{"taskspark", "--dir", "./tmp-test-dir", "show", testID},
		},
		{
			name: "direct task id after equals flag",
			in:   []string{"taskspark", "--dir=./tmp-test-dir", testID},
			want: []string{"taskspark", "--dir=./tmp-test-dir", "show", testID},
		},
		{
			name: "direct task id after bool flag",
			in:   []string{"taskspark", "--pretty", testID},
			want: []string{"taskspark", "--pretty", "show", testID},
		},
		{
			name: "direct task id after double dash",
			in:   []string{"taskspark", "--dir", "./tmp-test-dir", "--", testID},
			want: []string{"taskspark", "--dir", "./tmp-test-dir", "--", "show", testID},
		},
		{
			name: "normal subcommand not rewritten",
			in:   []string{"taskspark", "show", testID},
			want: []string{"taskspark", "show", testID},
		},
		{
			name: "non-uuid token not rewritten",
			in:   []string{"taskspark", "wat"},
			want: []string{"taskspark", "wat"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectTaskLookupArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteDirectTaskLookupArgs:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}

func TestIsTaskID(t *testing.T) {
	t.Parallel()

	if !isTaskID(testID) {
		t.Fatalf("expected %q to be a task id", testID)
	}
	for _, s := range []string{"", "wat", "item-abc123", "6ba7b810-9dad-11d1-80b4-00c04fd430cz"} {
		if isTaskID(s) {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}
