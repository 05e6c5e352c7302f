/*Package metrics wraps datadog-go to facilitate metric recording.
Naming convention of metrics:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
*/
package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/archetype-labs/minter-suite/base/env"
	"github.com/archetype-labs/minter-suite/base/log"
)

const (
	// ddRate is the rate to pass metrics to the datadog agent. 1 means always.
	ddRate = 1
	// buffer this many counters before sending to statsd
	bufferMetrics = 10
)

// Ender is returned by BumpTime so callers can `defer met.BumpTime(...).End()`
type Ender interface {
	End()
}

// Service provides the metric recording interface
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)
	BumpTime(key string, tags ...string) Ender
}

var (
	initOnce sync.Once
	ddClient statsCli
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

func initDDClient() {
	addr := fmt.Sprintf("%s:%d", viper.GetString("datadog_host"), 8125)
	log.Log().WithField("addr", addr).Info("connecting to datadog agent")
	cli, err := statsd.NewBuffered(addr, bufferMetrics)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Panic("can't talk to datadog agent")
	}
	ddClient = cli
}

// New creates a metric client with the package name as prefix
func New(pkgName string) Service {
	return &metricsImpl{
		pkgName: pkgName,
		ddTags: []string{
			// using host removes all tags associated with host
			"host:",
			"pod:" + env.PodName(),
			"env:" + viper.GetString("env_name"),
			"app:" + viper.GetString("app_name"),
		},
	}
}

type metricsImpl struct {
	pkgName string
	ddTags  []string
}

func (mt *metricsImpl) BumpAvg(key string, val float64, tags ...string) {
	initOnce.Do(initDDClient)
	if err := ddClient.Gauge(mt.pkgName+"."+key, val, append(mt.ddTags, parseTag(tags)...), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key}).Error("Bump fail")
	}
}

func (mt *metricsImpl) BumpSum(key string, val float64, tags ...string) {
	initOnce.Do(initDDClient)
	if err := ddClient.Count(mt.pkgName+"."+key, int64(val), append(mt.ddTags, parseTag(tags)...), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key}).Error("Bump fail")
	}
}

func (mt *metricsImpl) BumpHistogram(key string, val float64, tags ...string) {
	initOnce.Do(initDDClient)
	if err := ddClient.Histogram(mt.pkgName+"."+key, val, append(mt.ddTags, parseTag(tags)...), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key}).Error("Bump fail")
	}
}

// BumpTime starts a timer. Calling End() on the returned value records the
// elapsed time in milliseconds:
//
//	defer met.BumpTime("purchase.time").End()
func (mt *metricsImpl) BumpTime(key string, tags ...string) Ender {
	initOnce.Do(initDDClient)
	return &timeTracker{
		start: time.Now(),
		key:   mt.pkgName + "." + key,
		tags:  append(mt.ddTags, parseTag(tags)...),
	}
}

type timeTracker struct {
	start time.Time
	key   string
	tags  []string
}

func (t *timeTracker) End() {
	d := time.Since(t.start)
	dur := float64(d/time.Millisecond) + float64(d%time.Millisecond)*1e-6
	if err := ddClient.TimeInMilliseconds(t.key, dur, t.tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": t.key, "val": dur}).Error("Bump fail")
	}
}

func parseTag(tags []string) []string {
	if tags == nil {
		return nil
	}
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Panic("tag length needs to be multiple of 2")
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}
