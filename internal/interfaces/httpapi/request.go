package httpapi

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// flexibleID accepts an id sent either as a JSON number or a JSON string.
// null and "" decode to zero.
type flexibleID int64

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		if err := jsoniter.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("decode id string: %w", err)
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*f = 0
			return nil
		}
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("id %q is not an integer", raw)
	}
	*f = flexibleID(value)
	return nil
}

func (f flexibleID) Int64() int64 {
	return int64(f)
}

type teamRequest struct {
	TeamID  flexibleID `json:"teamId" validate:"gt=0"`
	IsDraft bool       `json:"isDraft"`
}

type leagueRequest struct {
	LeagueID flexibleID `json:"leagueId" validate:"gt=0"`
	IsDraft  bool       `json:"isDraft"`
}

type squadRequest struct {
	LeagueID flexibleID `json:"leagueId" validate:"gt=0"`
	TeamID   flexibleID `json:"teamId" validate:"gt=0"`
}

type draftProbeRequest struct {
	LeagueID flexibleID `json:"leagueId" validate:"gt=0"`
}
