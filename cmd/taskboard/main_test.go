package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectTaskLookupArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"taskboard"},
			want: []string{"taskboard"},
		},
		{
			name: "task id first token",
			in:   []string{"taskboard", "task-abc"},
			want: []string{"taskboard", "tasks", "show", "task-abc"},
		},
		{
			name: "after value flag",
			in:   []string{"taskboard", "--dir", "./ws", "task-abc"},
			want: []string{"taskboard", "--dir", "./ws", "tasks", "show", "task-abc"},
		},
		{
			name: "after equals flag",
			in:   []string{"taskboard", "--backend=file", "task-abc"},
			want: []string{"taskboard", "--backend=file", "tasks", "show", "task-abc"},
		},
		{
			name: "after bool flag",
			in:   []string{"taskboard", "--pretty", "task-abc"},
			want: []string{"taskboard", "--pretty", "tasks", "show", "task-abc"},
		},
		{
			name: "after double dash",
			in:   []string{"taskboard", "--", "task-abc"},
			want: []string{"taskboard", "--", "tasks", "show", "task-abc"},
		},
		{
			name: "subcommand untouched",
			in:   []string{"taskboard", "tasks", "show", "task-abc"},
			want: []string{"taskboard", "tasks", "show", "task-abc"},
		},
		{
			name: "bare prefix is not an id",
			in:   []string{"taskboard", "task-"},
			want: []string{"taskboard", "task-"},
		},
		{
			name: "value flag swallows its value",
			in:   []string{"taskboard", "--key", "task-abc"},
			want: []string{"taskboard", "--key", "task-abc"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectTaskLookupArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}
