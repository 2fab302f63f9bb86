package badger

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"

	"github.com/miajio/cpca/pkg/region"
)

// KeyPrefix 字典记录键前缀, 键为 adcode:<12位编码>
const KeyPrefix = "adcode:"

var ErrEmptyStore = errors.New("badger: store has no records")

func recordKey(code string) []byte {
	return []byte(KeyPrefix + region.PadCode(code))
}

// PutRecords 批量写入字典记录, 编码相同的记录覆盖
func (s *Store) PutRecords(records []region.Record) error {
	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for _, rec := range records {
		val, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if err := wb.Set(recordKey(rec.Code), val); err != nil {
			return fmt.Errorf("put %s: %w", rec.Code, err)
		}
	}
	if err := wb.Flush(); err != nil {
		return err
	}
	s.logger.Info("dictionary records stored", zap.Int("records", len(records)))
	return nil
}

// Record 按编码读取记录, 不存在时 ok 为 false
func (s *Store) Record(code string) (rec region.Record, ok bool, err error) {
	err = s.db.View(func(tx *badger.Txn) error {
		item, err := tx.Get(recordKey(code))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		ok = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	return rec, ok, err
}

// Records 按编码顺序读取全部记录
func (s *Store) Records() ([]region.Record, error) {
	var records []region.Record
	err := s.db.View(func(tx *badger.Txn) error {
		it := tx.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(KeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec region.Record
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyStore
	}
	return records, nil
}

// Count 记录数量
func (s *Store) Count() (int, error) {
	n := 0
	err := s.db.View(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false // 只获取键，不获取值
		opts.Prefix = []byte(KeyPrefix)

		it := tx.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}

// DropRecords 删除全部字典记录
func (s *Store) DropRecords() error {
	return s.db.DropPrefix([]byte(KeyPrefix))
}

// Backup 备份数据库
func (s *Store) Backup(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if _, err = s.db.Backup(f, 0); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Load 从备份文件恢复
func (s *Store) Load(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.db.Load(f, 256)
}
