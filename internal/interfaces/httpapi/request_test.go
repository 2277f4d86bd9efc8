package httpapi

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
)

func TestFlexibleID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    int64
		wantErr bool
	}{
		{name: "number", payload: `{"leagueId":1001}`, want: 1001},
		{name: "string", payload: `{"leagueId":"1001"}`, want: 1001},
		{name: "padded string", payload: `{"leagueId":" 42 "}`, want: 42},
		{name: "null", payload: `{"leagueId":null}`, want: 0},
		{name: "empty string", payload: `{"leagueId":""}`, want: 0},
		{name: "missing", payload: `{}`, want: 0},
		{name: "letters", payload: `{"leagueId":"abc"}`, wantErr: true},
		{name: "fraction", payload: `{"leagueId":10.5}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req draftProbeRequest
			err := jsoniter.Unmarshal([]byte(tt.payload), &req)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got id=%d", req.LeagueID)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if req.LeagueID.Int64() != tt.want {
				t.Fatalf("got id=%d want=%d", req.LeagueID, tt.want)
			}
		})
	}
}
