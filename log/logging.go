// SPDX-License-Identifier: GPL-3.0-or-later
package log

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Component prefixes.
const (
	LOG_MAIN        = "MA"
	LOG_DEDUP       = "DD"
	LOG_INDEX       = "IX"
	LOG_PERSISTENCE = "PI"
	LOG_IMAP        = "IM"
)

var components = []string{LOG_MAIN, LOG_DEDUP, LOG_INDEX, LOG_PERSISTENCE, LOG_IMAP}

// fieldOrder puts the fields locating a message right after the message text,
// so lines about the same copy line up.
var fieldOrder = []string{
	logrus.FieldKeyTime,
	logrus.FieldKeyLevel,
	logrus.FieldKeyMsg,
	"run",
	"label",
	"uid",
	"fingerprint",
}

var loggers map[string]*logrus.Logger

type PrefixLogger struct {
	formatter logrus.Formatter
	prefix    []byte
}

func NewPrefixLogger(prefix string) *PrefixLogger {
	return &PrefixLogger{
		formatter: &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05",
			DisableColors:   strings.Contains(runtime.GOOS, "windows"),
			SortingFunc:     sortFields,
		},
		prefix: []byte(fmt.Sprintf("%s:\t", prefix)),
	}
}

func (f *PrefixLogger) Format(entry *logrus.Entry) ([]byte, error) {
	text, err := f.formatter.Format(entry)
	if err != nil {
		return nil, err
	}
	return append(f.prefix, text...), nil
}

// sortFields orders keys by fieldOrder, then alphabetically with error last.
func sortFields(keys []string) {
	rank := func(key string) int {
		for i, k := range fieldOrder {
			if k == key {
				return i
			}
		}
		if key == logrus.ErrorKey {
			return len(fieldOrder) + 1
		}
		return len(fieldOrder)
	}

	sort.SliceStable(keys, func(i, j int) bool {
		ri, rj := rank(keys[i]), rank(keys[j])
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})
}

func getLevel(loglevel string) logrus.Level {
	level, err := logrus.ParseLevel(strings.ToLower(loglevel))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// InitLogging sets up one stderr logger per component. Components get their
// logger handed in by main, tests pass their own.
func InitLogging(loglevel string) {
	loggers = make(map[string]*logrus.Logger, len(components))
	for _, prefix := range components {
		l := logrus.New()
		l.Out = os.Stderr
		l.Level = getLevel(loglevel)
		l.Formatter = NewPrefixLogger(prefix)
		loggers[prefix] = l
	}
}

func SetLogLevel(loglevel string) {
	for _, l := range loggers {
		l.Level = getLevel(loglevel)
	}
}

func Logger(component string) *logrus.Logger {
	l, ok := loggers[component]
	if !ok {
		panic("Logger " + component + " unknown")
	}

	return l
}
