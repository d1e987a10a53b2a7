package encoding

import (
	"fmt"
	"strconv"
	"strings"

	"ostforge/internal/filtergraph"
)

// renderFilterComplex flattens a graph into ffmpeg -filter_complex
// syntax: each input's chain becomes a run of labeled filter stages,
// the chain outputs (plus generated silence when a gap is set) feed a
// single concat, and the result is labeled [out].
func renderFilterComplex(graph filtergraph.Graph) string {
	var stages []string
	var components []string
	filterID := 0

	for inputIndex, input := range graph.Inputs {
		if len(input.Chain) == 0 {
			components = append(components, fmt.Sprintf("[%d]", inputIndex))
			continue
		}
		for nodeIndex, node := range input.Chain {
			streamIn := fmt.Sprintf("[%d]", inputIndex)
			if nodeIndex > 0 {
				streamIn = fmt.Sprintf("[f%d]", filterID)
			}
			filterID++
			stages = append(stages, fmt.Sprintf("%s %s [f%d]", streamIn, renderNode(node), filterID))
		}
		components = append(components, fmt.Sprintf("[f%d]", filterID))
	}

	if graph.GapSeconds > 0 {
		components = append(components, "[silence]")
		stages = append(stages, fmt.Sprintf("anullsrc=r=%d:duration=%s [silence]", graph.SampleRate, formatNumber(graph.GapSeconds)))
	}

	stages = append(stages, fmt.Sprintf("%s concat=n=%d:v=0:a=1 [out]", strings.Join(components, ""), len(components)))
	return strings.Join(stages, "; ")
}

func renderNode(node filtergraph.Node) string {
	switch n := node.(type) {
	case filtergraph.Trim:
		return fmt.Sprintf("atrim=start=%s:end=%s", formatNumber(n.Start), formatNumber(n.End))
	case filtergraph.FadeIn:
		return fmt.Sprintf("afade=type=in:start_time=0:duration=%s", formatNumber(n.Duration))
	case filtergraph.FadeOut:
		return fmt.Sprintf("afade=type=out:start_time=%s:duration=%s", formatNumber(n.Start), formatNumber(n.Duration))
	case filtergraph.Volume:
		return fmt.Sprintf("volume=%s", formatNumber(n.Value))
	default:
		return ""
	}
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
