package output

import (
	"encoding/json"
	"errors"

	"schemadoc/internal/core"
)

type jsonFormatter struct{}

type catalogSummary struct {
	StorageBuckets int `json:"storageBuckets"`
	EnumTypes      int `json:"enumTypes"`
	EnumValues     int `json:"enumValues"`
}

type catalogPayload struct {
	Format  string         `json:"format"`
	Summary catalogSummary `json:"summary"`
	Catalog *core.Catalog  `json:"catalog"`
}

func (jsonFormatter) FormatDocument(_ string, c *core.Catalog) (string, error) {
	if c == nil {
		return "", errors.New("json output requires a catalog")
	}

	values := 0
	for _, e := range c.Enums {
		values += len(e.Values)
	}

	payload := catalogPayload{
		Format: string(FormatJSON),
		Summary: catalogSummary{
			StorageBuckets: len(c.Buckets),
			EnumTypes:      len(c.Enums),
			EnumValues:     values,
		},
		Catalog: c,
	}

	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}
