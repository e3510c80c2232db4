package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"

	"github.com/kdimtricp/mindmirror/internal/emotion"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatal("Failed to load .env:", err)
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./mindmirror.db"
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	fmt.Println("🔍 Checking Emotion Analysis Setup")
	fmt.Println("==================================")

	apiURL := os.Getenv("EMOTION_API_URL")
	if apiURL == "" {
		fmt.Println("⚠️  EMOTION_API_URL not set: server will use synthetic scores")
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := emotion.NewRemoteClassifier(apiURL).Ping(ctx)
		cancel()

		if err != nil {
			fmt.Printf("❌ Emotion model service unreachable (%s): %v\n", apiURL, err)
		} else {
			fmt.Printf("✅ Emotion model service reachable: %s\n", apiURL)
		}
	}
	fmt.Println()

	var analysisCount int
	err = db.QueryRow("SELECT COUNT(*) FROM analysis_history").Scan(&analysisCount)
	if err != nil {
		fmt.Println("❌ No analysis_history table found (no sessions analyzed yet)")
		return
	}
	fmt.Printf("🧠 Total analyses recorded: %d\n\n", analysisCount)

	rows, err := db.Query(`
		SELECT session_id, dominant_emotion, average_emotions,
			   total_frames, successful_analyses, model_used
		FROM analysis_history
		ORDER BY analyzed_at DESC
		LIMIT 5
	`)
	if err != nil {
		log.Fatal("Failed to query analyses:", err)
	}
	defer rows.Close()

	fmt.Println("📊 Recent Analyses:")
	fmt.Println("-------------------")

	count := 0
	for rows.Next() {
		var sessionID, dominant, emotionsJSON string
		var totalFrames, successful int
		var modelUsed bool

		if err := rows.Scan(&sessionID, &dominant, &emotionsJSON, &totalFrames, &successful, &modelUsed); err != nil {
			log.Printf("Error scanning row: %v", err)
			continue
		}

		count++
		fmt.Printf("\n🪞 Session: %s\n", sessionID)
		fmt.Printf("   😶 Dominant emotion: %s (%d/%d frames analyzed)\n", dominant, successful, totalFrames)
		if modelUsed {
			fmt.Println("   🤖 Scored by: emotion model service")
		} else {
			fmt.Println("   🎲 Scored by: synthetic fallback")
		}

		var averages map[string]float64
		if err := json.Unmarshal([]byte(emotionsJSON), &averages); err == nil {
			if value, ok := averages[dominant]; ok {
				fmt.Printf("   📈 Average %s score: %.2f%%\n", dominant, value)
			}
		}
	}

	if count == 0 {
		fmt.Println("No analyses found yet. Upload and analyze a session to test!")
	} else {
		fmt.Printf("\n✅ Pipeline is working! Found %d recent analyses.\n", count)
	}
}
