/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/esimdash/esimdash-cli/client/preference"
	"github.com/esimdash/esimdash-cli/cmd/logger"
	"github.com/esimdash/esimdash-cli/internal/view"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	username string
	password string
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to the ESIM service and store the session token",
	Example: `  esimdash login -u admin
  esimdash login -u admin -p '${env:ESIM_PASSWORD}'
  esimdash login -u '${aws:secretsmanager:esim,json_secret_key=username}' -p '${aws:secretsmanager:esim,json_secret_key=password}'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		creds, err := resolver.ResolveAll(cmd.Context(), map[string]string{
			"username": username,
			"password": password,
		})
		if err != nil {
			return err
		}
		user, pass := creds["username"], creds["password"]

		if user == "" || pass == "" {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return errors.New("username and password are required when not running in a terminal")
			}
		}
		if user == "" {
			if err := survey.AskOne(&survey.Input{
				Message: "Username:",
				Default: preference.LastUsername(cfg.APIURL),
			}, &user, survey.WithValidator(survey.Required)); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
		}
		if pass == "" {
			if err := survey.AskOne(&survey.Password{
				Message: "Password:",
			}, &pass, survey.WithValidator(survey.Required)); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
		}

		store, err := tokenStore()
		if err != nil {
			return err
		}

		lv := view.NewLoginView(newAPI(), store, logger.Logger)
		lv.Form.Update("username", user)
		lv.Form.Update("password", pass)

		fmt.Println("Logging in...")
		nav := lv.Submit(cmd.Context())
		if nav.IsZero() {
			return errors.New(lv.Error)
		}

		if err := preference.CreateOrUpdate(cfg.APIURL, user); err != nil {
			fmt.Println(err)
		}

		fmt.Println("Login successful")
		fmt.Printf("Token saved to %s. Run `esimdash esim ls` to see your ESIMs.\n", store.Path())
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	loginCmd.Flags().StringVarP(&password, "password", "p", "", "Password")

	rootCmd.AddCommand(loginCmd)
}
