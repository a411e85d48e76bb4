package util

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jsphweid/eartrain/constants"
	"golang.org/x/exp/constraints"
)

func EnsureStatsDir() {
	dir := constants.GetStatsDir()
	if err := os.MkdirAll(dir, 0777); err != nil {
		panic("Could not create stats dir because: " + err.Error())
	}
}

// StatsPath is the save file for a named game inside the stats dir.
func StatsPath(game string) string {
	return filepath.Join(constants.GetStatsDir(), game+".json")
}

// GatherAllStatsPaths lists every saved game file in the stats dir.
func GatherAllStatsPaths() []string {
	entries, err := os.ReadDir(constants.GetStatsDir())
	if err != nil {
		return nil
	}
	var res []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			res = append(res, filepath.Join(constants.GetStatsDir(), e.Name()))
		}
	}
	return res
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func GetKeysSorted[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Integer](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}
