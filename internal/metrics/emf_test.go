package metrics

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"
)

func TestRecorder_FlushOutput(t *testing.T) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	functionName = "" // test isolation

	rec := New(Namespace)
	rec.Dimension("Endpoint", "/api/style/recommend")
	rec.Metric("RequestLatencyMs", 321.5, UnitMilliseconds)
	rec.Count("RequestCount")
	rec.Property("statusCode", 200)
	rec.Flush()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)

	var doc map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("failed to parse EMF output as JSON: %v\nOutput: %s", err, buf.String())
	}

	awsDir, ok := doc["_aws"].(map[string]interface{})
	if !ok {
		t.Fatal("missing _aws directive in EMF output")
	}
	cwArr, ok := awsDir["CloudWatchMetrics"].([]interface{})
	if !ok || len(cwArr) == 0 {
		t.Fatal("CloudWatchMetrics should be a non-empty array")
	}
	cw := cwArr[0].(map[string]interface{})
	if cw["Namespace"] != Namespace {
		t.Errorf("expected namespace %s, got %v", Namespace, cw["Namespace"])
	}

	if doc["Endpoint"] != "/api/style/recommend" {
		t.Errorf("dimension value missing, got %v", doc["Endpoint"])
	}
	if doc["RequestLatencyMs"] != 321.5 {
		t.Errorf("metric value missing, got %v", doc["RequestLatencyMs"])
	}
	if doc["statusCode"] != float64(200) {
		t.Errorf("property missing, got %v", doc["statusCode"])
	}
}

func TestRecorder_NoMetricsNoOutput(t *testing.T) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	New(Namespace).Dimension("Endpoint", "/api/health").Flush()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	if buf.Len() != 0 {
		t.Errorf("expected no output without metrics, got %q", buf.String())
	}
}
