package main

import (
	"testing"
)

func TestFindCommand(t *testing.T) {
	tests := []struct {
		name        string
		mode        string
		query       string
		attrValue   string
		wantJSON    bool
		wantErr     bool
		wantContain []string
	}{
		{
			name:        "find by tag",
			mode:        "tag",
			query:       "ECUC-CONTAINER-VALUE",
			wantContain: []string{"Found 2 element(s)", "<ECUC-CONTAINER-VALUE>"},
		},
		{
			name:        "find by tag includes children count",
			mode:        "tag",
			query:       "AR-PACKAGE",
			wantContain: []string{"Found 1 element(s)", "children: 2"},
		},
		{
			name:        "find by tag no matches",
			mode:        "tag",
			query:       "NO-SUCH-TAG",
			wantContain: []string{"Found 0 element(s)"},
		},
		{
			name:        "find by path",
			mode:        "path",
			query:       "AR-PACKAGES/AR-PACKAGE/SHORT-NAME",
			wantContain: []string{"Found 1 element(s)", "text: EcucDefs"},
		},
		{
			name:        "find by descendant path",
			mode:        "path",
			query:       "//ECUC-CONTAINER-VALUE",
			wantContain: []string{"Found 2 element(s)"},
		},
		{
			name:        "find by attribute",
			mode:        "attr",
			query:       "UUID",
			attrValue:   "a1b2c3d4-0001-4a5b-8c9d-0e1f2a3b4c5d",
			wantContain: []string{"Found 1 element(s)"},
		},
		{
			name:    "invalid path expression",
			mode:    "path",
			query:   "ITEM[@id",
			wantErr: true,
		},
		{
			name:    "unknown mode",
			mode:    "subtree",
			query:   "X",
			wantErr: true,
		},
		{
			name:        "find as JSON",
			mode:        "tag",
			query:       "SHORT-NAME",
			wantJSON:    true,
			wantContain: []string{"EcucDefs", "CanNm"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetTestState()
			jsonOut = tt.wantJSON
			findMode = tt.mode
			findAttrValue = tt.attrValue

			args := []string{testDocPath(t, "sample.arxml"), tt.query}

			output, err := captureOutput(t, func() error {
				return runFind(args)
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runFind() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
				return
			}

			if tt.wantJSON && !tt.wantErr {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}
