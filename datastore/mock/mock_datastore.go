/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a mock implementation of the StatusLogStore interface for testing
package mock

import (
	"context"
	"sync"

	"github.com/suparena/statuslogs/storagemodels"
)

// DataStore is a mock implementation of datastore.StatusLogStore for testing.
// Records are kept per notification in insertion order.
type DataStore struct {
	mu         sync.RWMutex
	partitions map[string][]storagemodels.StatusLogRecord
	queryFunc  func(ctx context.Context, params *storagemodels.QueryParams) (*storagemodels.QueryResult, error)
	getFunc    func(ctx context.Context, params *storagemodels.GetParams) (*storagemodels.GetResult, error)
	queryError error
	getError   error

	queryCalls []storagemodels.QueryParams
	getCalls   []storagemodels.GetParams
}

// New creates a new mock DataStore
func New() *DataStore {
	return &DataStore{
		partitions: make(map[string][]storagemodels.StatusLogRecord),
	}
}

// WithQueryFunc sets a custom query function for testing
func (m *DataStore) WithQueryFunc(f func(ctx context.Context, params *storagemodels.QueryParams) (*storagemodels.QueryResult, error)) *DataStore {
	m.queryFunc = f
	return m
}

// WithGetFunc sets a custom point-lookup function for testing
func (m *DataStore) WithGetFunc(f func(ctx context.Context, params *storagemodels.GetParams) (*storagemodels.GetResult, error)) *DataStore {
	m.getFunc = f
	return m
}

// WithQueryError makes Query operations return an error
func (m *DataStore) WithQueryError(err error) *DataStore {
	m.queryError = err
	return m
}

// WithGetError makes GetOne operations return an error
func (m *DataStore) WithGetError(err error) *DataStore {
	m.getError = err
	return m
}

// GetOne retrieves a record by notification_id and log_id
func (m *DataStore) GetOne(ctx context.Context, params *storagemodels.GetParams) (*storagemodels.GetResult, error) {
	m.mu.Lock()
	m.getCalls = append(m.getCalls, *params)
	m.mu.Unlock()

	if m.getError != nil {
		return nil, m.getError
	}
	if m.getFunc != nil {
		return m.getFunc(ctx, params)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, record := range m.partitions[params.Key.NotificationID] {
		if record.LogID() == params.Key.LogID {
			return &storagemodels.GetResult{Item: copyRecord(record)}, nil
		}
	}
	return &storagemodels.GetResult{}, nil
}

// Query returns every record of the requested partition
func (m *DataStore) Query(ctx context.Context, params *storagemodels.QueryParams) (*storagemodels.QueryResult, error) {
	m.mu.Lock()
	m.queryCalls = append(m.queryCalls, *params)
	m.mu.Unlock()

	if m.queryError != nil {
		return nil, m.queryError
	}
	if m.queryFunc != nil {
		return m.queryFunc(ctx, params)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	records := m.partitions[params.PartitionValue]
	items := make([]storagemodels.StatusLogRecord, 0, len(records))
	for _, record := range records {
		items = append(items, copyRecord(record))
	}
	return &storagemodels.QueryResult{Items: items}, nil
}

// Helper methods for testing

// Put appends a record to its notification's partition, replacing any record
// with the same log_id.
func (m *DataStore) Put(record storagemodels.StatusLogRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()

	notificationID := record.NotificationID()
	partition := m.partitions[notificationID]
	for i, existing := range partition {
		if existing.LogID() == record.LogID() {
			partition[i] = copyRecord(record)
			return
		}
	}
	m.partitions[notificationID] = append(partition, copyRecord(record))
}

// QueryCalls returns the parameters of every Query call so far
func (m *DataStore) QueryCalls() []storagemodels.QueryParams {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]storagemodels.QueryParams(nil), m.queryCalls...)
}

// GetCalls returns the parameters of every GetOne call so far
func (m *DataStore) GetCalls() []storagemodels.GetParams {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]storagemodels.GetParams(nil), m.getCalls...)
}

// Count returns the number of stored records
func (m *DataStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0
	for _, partition := range m.partitions {
		total += len(partition)
	}
	return total
}

// Clear removes all data and recorded calls
func (m *DataStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.partitions = make(map[string][]storagemodels.StatusLogRecord)
	m.queryCalls = nil
	m.getCalls = nil
}

func copyRecord(record storagemodels.StatusLogRecord) storagemodels.StatusLogRecord {
	out := make(storagemodels.StatusLogRecord, len(record))
	for k, v := range record {
		out[k] = v
	}
	return out
}
