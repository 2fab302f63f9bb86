package badger

import (
	"errors"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// DefaultGCInterval 默认value log GC间隔
const DefaultGCInterval = 5 * time.Minute

// Store 基于badger的行政区划字典存储
type Store struct {
	db     *badger.DB
	logger *zap.Logger

	gcTicker     *time.Ticker       // GC定时器
	gcInterval   time.Duration      // GC间隔时间
	gcUpdateChan chan time.Duration // GC更新间隔时间信号

	done        chan struct{} // 退出信号
	doneSuccess chan error    // 退出完成信号
	closeOnce   sync.Once
	closeErr    error
}

// Option 存储选项
type Option func(*Store)

// WithLogger 设置日志, badger自身的日志也写入该logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithGCInterval 设置GC间隔
func WithGCInterval(interval time.Duration) Option {
	return func(s *Store) {
		if interval > 0 {
			s.gcInterval = interval
		}
	}
}

// Open 打开目录下的存储
func Open(dir string, opts ...Option) (*Store, error) {
	return open(badger.DefaultOptions(dir), opts)
}

// OpenInMemory 打开内存存储, 关闭后数据丢失
func OpenInMemory(opts ...Option) (*Store, error) {
	return open(badger.DefaultOptions("").WithInMemory(true), opts)
}

func open(bo badger.Options, opts []Option) (*Store, error) {
	s := &Store{
		logger:       zap.NewNop(),
		gcInterval:   DefaultGCInterval,
		gcUpdateChan: make(chan time.Duration),
		done:         make(chan struct{}),
		doneSuccess:  make(chan error, 1),
	}
	for _, opt := range opts {
		opt(s)
	}

	db, err := badger.Open(bo.WithLogger(badgerLogger{s.logger.Sugar()}))
	if err != nil {
		return nil, err
	}
	s.db = db
	s.gcTicker = time.NewTicker(s.gcInterval)
	go s.listener()
	return s, nil
}

// DB 获取badger数据库
func (s *Store) DB() *badger.DB { return s.db }

// listener 监听GC与退出信号
func (s *Store) listener() {
	defer s.gcTicker.Stop()
	for {
		select {
		case <-s.gcTicker.C:
			s.runGC()
		case interval := <-s.gcUpdateChan:
			s.gcInterval = interval
			s.gcTicker.Reset(interval)
		case <-s.done:
			s.doneSuccess <- s.db.Close()
			return
		}
	}
}

// runGC 回收value log, 没有可回收的文件时badger返回ErrNoRewrite
func (s *Store) runGC() {
	for {
		err := s.db.RunValueLogGC(0.5)
		if err == nil {
			continue
		}
		if !errors.Is(err, badger.ErrNoRewrite) && !errors.Is(err, badger.ErrGCInMemoryMode) {
			s.logger.Warn("badger value log gc failed", zap.Error(err))
		}
		return
	}
}

// SetGCInterval 设置GC间隔, 关闭后调用无效
func (s *Store) SetGCInterval(interval time.Duration) {
	if 0 >= interval {
		return
	}
	select {
	case s.gcUpdateChan <- interval:
	case <-s.done:
	}
}

// Close 停止GC并关闭数据库, 重复调用返回首次的结果
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
		select {
		case s.closeErr = <-s.doneSuccess:
		case <-time.After(5 * time.Second):
			s.closeErr = errors.New("badger store close timeout")
		}
	})
	return s.closeErr
}

// badgerLogger 将badger日志转到zap
type badgerLogger struct {
	*zap.SugaredLogger
}

func (l badgerLogger) Warningf(format string, args ...any) { l.Warnf(format, args...) }
