package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/data/aztables"
	"github.com/bytedance/sonic"
)

// snapshotPartition is the partition key every snapshot entity lives under
const snapshotPartition = "snapshots"

// The service caps a string property at 64 KiB of UTF-16 and a whole entity
// at 1 MiB, so a snapshot is split across numbered Data properties.
const (
	maxChunkUnits = 32 * 1024
	maxChunks     = 15
)

// ErrSnapshotTooLarge indicates a snapshot that does not fit in one entity
var ErrSnapshotTooLarge = errors.New("snapshot too large for an azure tables entity")

// tableClient is the subset of *aztables.Client the slot uses
type tableClient interface {
	GetEntity(ctx context.Context, partitionKey, rowKey string, options *aztables.GetEntityOptions) (aztables.GetEntityResponse, error)
	UpsertEntity(ctx context.Context, entity []byte, options *aztables.UpsertEntityOptions) (aztables.UpsertEntityResponse, error)
	DeleteEntity(ctx context.Context, partitionKey, rowKey string, options *aztables.DeleteEntityOptions) (aztables.DeleteEntityResponse, error)
}

// TableSlot stores each key as one Azure Tables entity
type TableSlot struct {
	table tableClient
}

// OpenTableSlot connects with a storage connection string and creates the
// table when it does not exist yet
func OpenTableSlot(ctx context.Context, connStr, table string) (*TableSlot, error) {
	opts := aztables.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Retry: policy.RetryOptions{
				MaxRetries:    3,
				TryTimeout:    time.Minute,
				RetryDelay:    time.Second,
				MaxRetryDelay: 15 * time.Second,
				StatusCodes:   []int{408, 429, 500, 502, 503, 504},
			},
		},
	}
	svc, err := aztables.NewServiceClientFromConnectionString(connStr, &opts)
	if err != nil {
		return nil, fmt.Errorf("azure tables client: %w", err)
	}
	client := svc.NewClient(table)
	if _, err := client.CreateTable(ctx, nil); err != nil {
		var respErr *azcore.ResponseError
		if !(errors.As(err, &respErr) && respErr.ErrorCode == string(aztables.TableAlreadyExists)) {
			return nil, fmt.Errorf("create table %s: %w", table, err)
		}
	}
	return &TableSlot{table: client}, nil
}

func (s *TableSlot) Read(ctx context.Context, key string) ([]byte, error) {
	resp, err := s.table.GetEntity(ctx, snapshotPartition, key, nil)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSlotEmpty
		}
		return nil, fmt.Errorf("get entity: %w", err)
	}
	return decodeSnapshotEntity(resp.Value)
}

func (s *TableSlot) Write(ctx context.Context, key string, data []byte) error {
	payload, err := encodeSnapshotEntity(key, data)
	if err != nil {
		return err
	}
	_, err = s.table.UpsertEntity(ctx, payload, &aztables.UpsertEntityOptions{UpdateMode: aztables.UpdateModeReplace})
	if err != nil {
		return fmt.Errorf("upsert entity: %w", err)
	}
	return nil
}

func (s *TableSlot) Delete(ctx context.Context, key string) error {
	_, err := s.table.DeleteEntity(ctx, snapshotPartition, key, nil)
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("delete entity: %w", err)
	}
	return nil
}

func (s *TableSlot) Close() error { return nil }

func encodeSnapshotEntity(key string, data []byte) ([]byte, error) {
	chunks := splitUTF16(string(data), maxChunkUnits)
	if len(chunks) > maxChunks {
		return nil, fmt.Errorf("%w: %d bytes", ErrSnapshotTooLarge, len(data))
	}
	ent := map[string]any{
		"PartitionKey": snapshotPartition,
		"RowKey":       key,
		"Chunks":       len(chunks),
	}
	for i, chunk := range chunks {
		ent[chunkProperty(i)] = chunk
	}
	payload, err := sonic.ConfigStd.Marshal(ent)
	if err != nil {
		return nil, fmt.Errorf("encode entity: %w", err)
	}
	return payload, nil
}

func decodeSnapshotEntity(value []byte) ([]byte, error) {
	var ent map[string]any
	if err := sonic.ConfigStd.Unmarshal(value, &ent); err != nil {
		return nil, fmt.Errorf("decode entity: %w", err)
	}
	n, _ := ent["Chunks"].(float64)
	if n < 1 {
		return nil, ErrSlotEmpty
	}
	var sb strings.Builder
	for i := range int(n) {
		chunk, ok := ent[chunkProperty(i)].(string)
		if !ok {
			return nil, fmt.Errorf("decode entity: missing %s", chunkProperty(i))
		}
		sb.WriteString(chunk)
	}
	return []byte(sb.String()), nil
}

func chunkProperty(i int) string {
	return fmt.Sprintf("Data%02d", i)
}

// splitUTF16 cuts s on rune boundaries into pieces of at most limit UTF-16 code units
func splitUTF16(s string, limit int) []string {
	var out []string
	start, units := 0, 0
	for i, r := range s {
		n := utf16.RuneLen(r)
		if units+n > limit {
			out = append(out, s[start:i])
			start, units = i, 0
		}
		units += n
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

func isNotFound(err error) bool {
	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && respErr.StatusCode == 404
}
