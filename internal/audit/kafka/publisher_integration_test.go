//go:build integration

package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"centreg/internal/audit"
	"centreg/pkg/testutil/containers"
)

func TestPublisherEmitsOrderedEvents(t *testing.T) {
	rp := containers.NewRedpandaContainer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	const topic = "centreg.audit.test"

	pub, err := New(ctx, []string{rp.Broker}, topic)
	require.NoError(t, err)
	defer pub.Close()

	events := []audit.Event{
		{
			Timestamp:        time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
			Action:           audit.ActionRequestSubmitted,
			Kind:             "CLIENT_REGISTRATION",
			Origin:           "SECURITY_SERVER",
			SecurityServerID: "SERVER:FED/GOV/1001/SS1",
			ClientID:         "SUBSYSTEM:FED/COM/2002/billing",
			ProcessingID:     "9f0c2f44-7f37-4a4b-9c3e-0d5b6a1e2f33",
		},
		{
			Timestamp:        time.Date(2026, 3, 14, 9, 31, 0, 0, time.UTC),
			Action:           audit.ActionProcessingApproved,
			Kind:             "CLIENT_REGISTRATION",
			SecurityServerID: "SERVER:FED/GOV/1001/SS1",
			ClientID:         "SUBSYSTEM:FED/COM/2002/billing",
			ProcessingID:     "9f0c2f44-7f37-4a4b-9c3e-0d5b6a1e2f33",
			Status:           "APPROVED",
			Operator:         "registry-admin",
		},
	}
	for _, ev := range events {
		require.NoError(t, pub.Emit(ctx, ev))
	}

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(rp.Broker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	var records []*kgo.Record
	for len(records) < len(events) {
		fetches := consumer.PollFetches(ctx)
		require.NoError(t, fetches.Err())
		records = append(records, fetches.Records()...)
	}
	require.Len(t, records, len(events))

	for i, rec := range records {
		// Records keyed by processing ID share a partition, so the
		// consumer sees them in emit order.
		assert.Equal(t, events[i].ProcessingID, string(rec.Key))

		var got audit.Event
		require.NoError(t, json.Unmarshal(rec.Value, &got))
		assert.Equal(t, events[i].Action, got.Action)
		assert.Equal(t, events[i].SecurityServerID, got.SecurityServerID)
		assert.Equal(t, events[i].ClientID, got.ClientID)
		assert.Equal(t, events[i].Status, got.Status)
		assert.True(t, got.Timestamp.Equal(events[i].Timestamp))
	}
}

func TestEmitStampsMissingTimestamp(t *testing.T) {
	rp := containers.NewRedpandaContainer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	const topic = "centreg.audit.stamp"

	pub, err := New(ctx, []string{rp.Broker}, topic)
	require.NoError(t, err)
	defer pub.Close()

	require.NoError(t, pub.Emit(ctx, audit.Event{
		Action:       audit.ActionProcessingDeclined,
		Kind:         "AUTH_CERT_REGISTRATION",
		ProcessingID: "decline-1",
	}))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(rp.Broker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	require.NoError(t, fetches.Err())
	records := fetches.Records()
	require.Len(t, records, 1)

	var got audit.Event
	require.NoError(t, json.Unmarshal(records[0].Value, &got))
	assert.False(t, got.Timestamp.IsZero())
}
