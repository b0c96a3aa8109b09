package runtime

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	cfgpkg "github.com/rzbill/snowid/internal/config"
	"github.com/rzbill/snowid/internal/journal"
	"github.com/rzbill/snowid/internal/noderegistry"
	pebblestore "github.com/rzbill/snowid/internal/storage/pebble"
	logpkg "github.com/rzbill/snowid/pkg/log"
	"github.com/rzbill/snowid/pkg/snowid"
)

// Options for building the Runtime.
type Options struct {
	DataDir       string
	Fsync         pebblestore.FsyncMode
	FsyncInterval time.Duration
	Config        cfgpkg.Config
	Logger        logpkg.Logger
}

// Runtime wires storage, config, the node registry, the journal and the id
// generator for a single-node instance.
type Runtime struct {
	db         *pebblestore.DB
	config     cfgpkg.Config
	layout     snowid.Layout
	registry   *noderegistry.Registry
	journal    *journal.Journal
	gen        *snowid.Generator
	lease      *noderegistry.Lease
	instanceID string
	logger     logpkg.Logger

	stopRenew context.CancelFunc
	wg        sync.WaitGroup
}

// Open initializes storage, leases a node id and returns a Runtime ready to
// mint ids. A pinned Config.NodeID is acquired directly; AutoNodeID leases
// the lowest free id.
func Open(opts Options) (*Runtime, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logpkg.NewLogger(logpkg.WithLevel(logpkg.InfoLevel))
	}
	logger = logger.With(logpkg.Component("runtime"))

	layout, err := opts.Config.BitLayout()
	if err != nil {
		return nil, err
	}
	db, err := pebblestore.Open(pebblestore.Options{DataDir: opts.DataDir, Fsync: opts.Fsync, FsyncInterval: opts.FsyncInterval})
	if err != nil {
		return nil, err
	}

	rt := &Runtime{
		db:         db,
		config:     opts.Config,
		layout:     layout,
		registry:   noderegistry.New(db, layout.MaxNode(), time.Duration(opts.Config.LeaseTTLMs)*time.Millisecond),
		instanceID: uuid.NewString(),
		logger:     logger,
	}
	rt.journal, err = journal.Open(db, opts.Config.JournalMaxEntries)
	if err != nil {
		db.Close()
		return nil, err
	}

	hostname, _ := os.Hostname()
	ctx := context.Background()
	if opts.Config.NodeID == cfgpkg.AutoNodeID {
		rt.lease, err = rt.registry.Acquire(ctx, rt.instanceID, hostname)
	} else {
		rt.lease, err = rt.registry.AcquireNode(ctx, uint64(opts.Config.NodeID), rt.instanceID, hostname)
	}
	if err != nil {
		db.Close()
		return nil, err
	}

	rt.guardClockRollback(ctx)

	rt.gen, err = snowid.NewWithLayout(rt.lease.NodeID, layout)
	if err != nil {
		db.Close()
		return nil, err
	}

	_, _ = rt.journal.Append(ctx, journal.EventLeaseAcquired, rt.lease.NodeID, map[string]string{
		"instance": rt.instanceID,
		"hostname": hostname,
	})
	logger.Info("node lease acquired",
		logpkg.Uint64("node", rt.lease.NodeID),
		logpkg.Str("instance", rt.instanceID),
	)

	renewCtx, cancel := context.WithCancel(context.Background())
	rt.stopRenew = cancel
	rt.wg.Add(1)
	go rt.renewLoop(renewCtx)

	return rt, nil
}

// guardClockRollback blocks until the wall clock passes the node's persisted
// minting high-water mark, so a restart under a rolled-back clock cannot
// reissue (timestamp, sequence) pairs already given out by a previous run.
func (rt *Runtime) guardClockRollback(ctx context.Context) {
	last := rt.lease.LastIssuedMs
	now := snowid.NowMs()
	if now > last {
		return
	}
	rt.logger.Warn("clock behind persisted high-water mark, waiting",
		logpkg.Uint64("node", rt.lease.NodeID),
		logpkg.Int64("last_issued_ms", last),
		logpkg.Int64("now_ms", now),
	)
	_, _ = rt.journal.Append(ctx, journal.EventClockRollback, rt.lease.NodeID, map[string]int64{
		"deltaMs": last - now,
	})
	for snowid.NowMs() <= last {
		time.Sleep(5 * time.Millisecond)
	}
}

// renewLoop keeps the node lease fresh and persists the minting high-water
// mark alongside each renewal.
func (rt *Runtime) renewLoop(ctx context.Context) {
	defer rt.wg.Done()
	interval := time.Duration(rt.config.LeaseTTLMs) * time.Millisecond / 3
	if interval < time.Second {
		interval = time.Second
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if _, err := rt.registry.Renew(ctx, rt.lease.NodeID, rt.instanceID); err != nil {
				rt.logger.Error("lease renewal failed", logpkg.Uint64("node", rt.lease.NodeID), logpkg.Err(err))
				continue
			}
			if last := rt.gen.LastTimestamp(); last >= 0 {
				wallMs := rt.layout.EpochMs() + last
				if err := rt.registry.RecordLastIssued(ctx, rt.lease.NodeID, wallMs); err != nil {
					rt.logger.Error("high-water mark update failed", logpkg.Uint64("node", rt.lease.NodeID), logpkg.Err(err))
				}
			}
			_, _ = rt.journal.Append(ctx, journal.EventLeaseRenewed, rt.lease.NodeID, nil)
		}
	}
}

// Close releases the node lease and closes underlying resources.
func (rt *Runtime) Close() error {
	if rt.stopRenew != nil {
		rt.stopRenew()
	}
	rt.wg.Wait()

	ctx := context.Background()
	if rt.lease != nil {
		if last := rt.gen.LastTimestamp(); last >= 0 {
			_ = rt.registry.RecordLastIssued(ctx, rt.lease.NodeID, rt.layout.EpochMs()+last)
		}
		if err := rt.registry.Release(ctx, rt.lease.NodeID, rt.instanceID); err != nil {
			rt.logger.Error("lease release failed", logpkg.Uint64("node", rt.lease.NodeID), logpkg.Err(err))
		}
		_, _ = rt.journal.Append(ctx, journal.EventLeaseReleased, rt.lease.NodeID, nil)
	}
	if rt.db == nil {
		return nil
	}
	return rt.db.Close()
}

// CheckHealth performs a simple storage health check.
func (rt *Runtime) CheckHealth(ctx context.Context) error {
	if rt.db == nil {
		return errors.New("db not open")
	}
	it, err := rt.db.NewIter(nil)
	if err != nil {
		return err
	}
	return it.Close()
}

// Generator returns the instance's id generator.
func (rt *Runtime) Generator() *snowid.Generator { return rt.gen }

// Layout returns the effective bit layout.
func (rt *Runtime) Layout() snowid.Layout { return rt.layout }

// Registry returns the node registry.
func (rt *Runtime) Registry() *noderegistry.Registry { return rt.registry }

// Journal returns the operational journal.
func (rt *Runtime) Journal() *journal.Journal { return rt.journal }

// Lease returns the lease the instance minted under.
func (rt *Runtime) Lease() noderegistry.Lease { return *rt.lease }

// InstanceID returns the process instance identity.
func (rt *Runtime) InstanceID() string { return rt.instanceID }

// Config returns the runtime configuration.
func (rt *Runtime) Config() cfgpkg.Config { return rt.config }

// DB exposes the underlying DB for advanced operations (internal use only).
func (rt *Runtime) DB() *pebblestore.DB { return rt.db }
