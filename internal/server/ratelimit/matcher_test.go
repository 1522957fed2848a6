package ratelimit

import (
	"testing"
	"time"
)

func TestMatchEndpoint_Health(t *testing.T) {
	config := MatchEndpoint("/health", "GET", nil)
	if config == nil {
		t.Fatal("Expected health check to match")
	}
	if config.Limit != 0 {
		t.Errorf("Expected unlimited health check, got limit %d", config.Limit)
	}
}

func TestMatchEndpoint_Export(t *testing.T) {
	config := MatchEndpoint("/resumes/abc-123/export", "GET", nil)
	if config == nil {
		t.Fatal("Expected export path to match")
	}
	if config.Limit != 20 {
		t.Errorf("Expected export limit 20, got %d", config.Limit)
	}

	// Plain resume reads are not the export tier
	if config := MatchEndpoint("/resumes/abc-123", "GET", nil); config != nil {
		t.Errorf("Expected plain resume read to use default limit, got %+v", config)
	}
}

func TestMatchEndpoint_ExactAndPrefix(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/ai/improve", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/resumes/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
	}

	if config := MatchEndpoint("/ai/improve", "POST", configs); config == nil || config.Limit != 30 {
		t.Errorf("Expected exact match for /ai/improve, got %+v", config)
	}
	if config := MatchEndpoint("/resumes/abc-123", "PUT", configs); config == nil || config.Limit != 100 {
		t.Errorf("Expected prefix match for /resumes/{id}, got %+v", config)
	}
	if config := MatchEndpoint("/ai/improve", "GET", configs); config != nil {
		t.Errorf("Expected method mismatch to return nil, got %+v", config)
	}
}
