package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu                   sync.RWMutex
	submissionsReceived  int64
	submissionsDelivered int64
	submissionsFailed    int64
	attachmentsSent      int64
	attachmentsFailed    int64
	apiCallsTotal        int64
	apiCallsSuccessful   int64
	lastUpdateTime       time.Time
}

// Snapshot — копия счётчиков для отдачи наружу
type Snapshot struct {
	SubmissionsReceived  int64     `json:"submissions_received"`
	SubmissionsDelivered int64     `json:"submissions_delivered"`
	SubmissionsFailed    int64     `json:"submissions_failed"`
	AttachmentsSent      int64     `json:"attachments_sent"`
	AttachmentsFailed    int64     `json:"attachments_failed"`
	APICallsTotal        int64     `json:"api_calls_total"`
	APICallsSuccessful   int64     `json:"api_calls_successful"`
	LastUpdateTime       time.Time `json:"last_update_time"`
}

func NewMetrics() *Metrics {
	return &Metrics{
		lastUpdateTime: time.Now(),
	}
}

func (m *Metrics) IncrementSubmissionsReceived() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissionsReceived++
	m.lastUpdateTime = time.Now()
}

func (m *Metrics) IncrementSubmissionsDelivered() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissionsDelivered++
	m.lastUpdateTime = time.Now()
}

func (m *Metrics) IncrementSubmissionsFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissionsFailed++
	m.lastUpdateTime = time.Now()
}

func (m *Metrics) IncrementAttachment(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if success {
		m.attachmentsSent++
	} else {
		m.attachmentsFailed++
	}
	m.lastUpdateTime = time.Now()
}

func (m *Metrics) IncrementAPICall(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apiCallsTotal++
	if success {
		m.apiCallsSuccessful++
	}
	m.lastUpdateTime = time.Now()
}

func (m *Metrics) GetSnapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{
		SubmissionsReceived:  m.submissionsReceived,
		SubmissionsDelivered: m.submissionsDelivered,
		SubmissionsFailed:    m.submissionsFailed,
		AttachmentsSent:      m.attachmentsSent,
		AttachmentsFailed:    m.attachmentsFailed,
		APICallsTotal:        m.apiCallsTotal,
		APICallsSuccessful:   m.apiCallsSuccessful,
		LastUpdateTime:       m.lastUpdateTime,
	}
}
