package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/eartrain/model"
	"github.com/jsphweid/eartrain/score"
	"github.com/jsphweid/eartrain/util"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve saved stats over HTTP",
	Long:  `Serve saved game stats as a small read-only JSON API.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func loadGameScores(name string) ([]*score.Score, error) {
	data, err := os.ReadFile(util.StatsPath(name))
	if err != nil {
		return nil, err
	}
	var scores []*score.Score
	if err := json.Unmarshal(data, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func handleListGames(w http.ResponseWriter, r *http.Request) {
	games := make([]string, 0)
	for _, path := range util.GatherAllStatsPaths() {
		games = append(games, strings.TrimSuffix(filepath.Base(path), ".json"))
	}
	json.NewEncoder(w).Encode(games)
}

func handleGameSessions(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	scores, err := loadGameScores(name)
	if err != nil {
		writeError(w, 404, "No saved game named "+name)
		return
	}
	res := make([]model.SessionSummary, 0, len(scores))
	for _, sc := range scores {
		c, t := sc.Total()
		res = append(res, model.SessionSummary{
			Name:    sc.Name,
			Start:   sc.Start,
			End:     sc.End,
			Correct: c,
			Total:   t,
		})
	}
	json.NewEncoder(w).Encode(res)
}

func handleGameTotal(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	scores, err := loadGameScores(name)
	if err != nil {
		writeError(w, 404, "No saved game named "+name)
		return
	}
	c, t := score.Sum("Total", scores).Total()
	json.NewEncoder(w).Encode(model.TotalResponse{Correct: c, Total: t})
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/games", handleListGames).Methods("GET")
	router.HandleFunc("/games/{name}", handleGameSessions).Methods("GET")
	router.HandleFunc("/games/{name}/total", handleGameTotal).Methods("GET")

	fmt.Printf("Serving stats on %v\n", serveAddr)
	log.Fatal(http.ListenAndServe(serveAddr, cors.Default().Handler(router)))
}
