package huffmantree

import (
	"strings"
	"testing"
)

func TestCountFrequencies(t *testing.T) {
	freqs := CountFrequencies("The bird is the word")

	expectDump := strings.Join([]string{
		"FrequencyTable{\n",
		"\t' ' = 4\n",
		"\t'b' = 1\n",
		"\t'd' = 2\n",
		"\t'e' = 2\n",
		"\t'h' = 2\n",
		"\t'i' = 2\n",
		"\t'o' = 1\n",
		"\t'r' = 2\n",
		"\t's' = 1\n",
		"\t't' = 2\n",
		"\t'w' = 1\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = freqs.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
	if total := freqs.Total(); total != 20 {
		t.Errorf("expected total 20, got %d", total)
	}
}
