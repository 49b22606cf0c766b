package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login [email] [password]",
	Short: "Authenticate against the API and print a bearer token",
	Long:  `Send credentials to the auth service and print the issued JWT on success.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		sendLogin(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func apiBaseURL() string {
	if url := os.Getenv("AUTH_API_URL"); url != "" {
		return url
	}
	return "http://localhost:8080"
}

func sendLogin(email, password string) {
	payload := map[string]string{
		"username": email,
		"password": password,
	}
	jsonData, _ := json.Marshal(payload)

	resp, err := http.Post(apiBaseURL()+"/auth/login", "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Login failed (%d): %s\n", resp.StatusCode, string(body))
		return
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Unexpected response: %s\n", string(body))
		return
	}

	fmt.Println(result.Token)
	fmt.Fprintln(os.Stderr, "Tip: export AUTH_TOKEN=<token> and pass it as 'Authorization: Bearer <token>'.")
}
