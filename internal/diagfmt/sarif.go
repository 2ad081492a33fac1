package diagfmt

import (
	"encoding/json"
	"io"
	"path/filepath"

	"pystyle/internal/rules"
)

const (
	sarifVersion = "2.1.0"
	sarifSchema  = "https://json.schemastore.org/sarif-2.1.0.json"
)

type sarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool        sarifTool         `json:"tool"`
	Invocations []sarifInvocation `json:"invocations,omitempty"`
	Results     []sarifResult     `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version,omitempty"`
	InformationURI string      `json:"informationUri,omitempty"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	ShortDescription     sarifMessage    `json:"shortDescription"`
	DefaultConfiguration sarifRuleConfig `json:"defaultConfiguration"`
	Properties           map[string]any  `json:"properties,omitempty"`
}

type sarifRuleConfig struct {
	Level string `json:"level"`
}

type sarifInvocation struct {
	Arguments           []string `json:"arguments,omitempty"`
	ExecutionSuccessful bool     `json:"executionSuccessful"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	RuleIndex int             `json:"ruleIndex"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           sarifRegion           `json:"region"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine uint32 `json:"startLine"`
}

// Sarif форматирует отчёты в SARIF (v2.1.0): каталог правил идёт в
// tool.driver.rules, каждое нарушение становится result с регионом-строкой.
func Sarif(w io.Writer, reports []FileReport, meta SarifRunMeta) error {
	catalog := rules.Catalog()
	ruleIndex := make(map[string]int, len(catalog))
	driver := sarifDriver{
		Name:           meta.ToolName,
		Version:        meta.ToolVersion,
		InformationURI: meta.InformationURI,
		Rules:          make([]sarifRule, 0, len(catalog)),
	}
	for i, info := range catalog {
		ruleIndex[info.ID()] = i
		driver.Rules = append(driver.Rules, sarifRule{
			ID:                   info.ID(),
			Name:                 info.Name,
			ShortDescription:     sarifMessage{Text: info.Summary},
			DefaultConfiguration: sarifRuleConfig{Level: "warning"},
			Properties:           map[string]any{"family": info.Family.String()},
		})
	}

	run := sarifRun{
		Tool:    sarifTool{Driver: driver},
		Results: make([]sarifResult, 0),
	}
	if len(meta.InvocationArgs) > 0 {
		run.Invocations = []sarifInvocation{{Arguments: meta.InvocationArgs, ExecutionSuccessful: true}}
	}

	for _, r := range reports {
		uri := filepath.ToSlash(r.Path)
		for _, d := range r.Diagnostics {
			id := d.Code.ID()
			idx, ok := ruleIndex[id]
			if !ok {
				idx = -1
			}
			run.Results = append(run.Results, sarifResult{
				RuleID:    id,
				RuleIndex: idx,
				Level:     "warning",
				Message:   sarifMessage{Text: d.Message},
				Locations: []sarifLocation{{
					PhysicalLocation: sarifPhysicalLocation{
						ArtifactLocation: sarifArtifactLocation{URI: uri},
						Region:           sarifRegion{StartLine: d.Line},
					},
				}},
			})
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(sarifLog{
		Version: sarifVersion,
		Schema:  sarifSchema,
		Runs:    []sarifRun{run},
	})
}
