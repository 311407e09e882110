package agentkit

import (
	"testing"
	"time"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

func buildTestTopicCreate() *hedera.TopicCreateTransaction {
	return hedera.NewTopicCreateTransaction().SetTopicMemo("agentkit test")
}

func mustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", value, err)
	}
	return parsed
}
