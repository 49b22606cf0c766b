package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adeyemio/simple-auth-api/internal/auth/password"
)

// hashCmd represents the hash command
var hashCmd = &cobra.Command{
	Use:   "hash [password]",
	Short: "Print the bcrypt hash of a password",
	Long:  `Hash a plaintext password with the same scheme the service uses. Handy for seeding accounts.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		hash, err := password.Hash(args[0])
		if err != nil {
			fmt.Printf("Error hashing password: %v\n", err)
			return
		}
		fmt.Println(hash)
	},
}

func init() {
	rootCmd.AddCommand(hashCmd)
}
