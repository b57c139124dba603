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
	"fmt"
	"sort"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt"
	"github.com/jedib0t/go-pretty/table"
	"github.com/spf13/cobra"
)

// whoamiCmd represents the whoami command
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "show details of the stored session token",

	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := tokenStore()
		if err != nil {
			return err
		}
		token, err := store.Get()
		if err != nil {
			return err
		}

		ta := table.NewWriter()
		ta.AppendRow(table.Row{"API URL", cfg.APIURL})
		ta.AppendRow(table.Row{"TOKEN FILE", store.Path()})

		claims := tokenClaims(token, time.Now())
		if claims == nil {
			ta.AppendRow(table.Row{"TOKEN", "opaque (not a JWT)"})
		}

		keys := make([]string, 0, len(claims))
		for k := range claims {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			ta.AppendRow(table.Row{k, claims[k]})
		}

		ta.SetStyle(table.StyleLight)
		fmt.Printf("%s\n", ta.Render())
		return nil
	},
}

// tokenClaims reads the claims of a JWT without verifying its signature.
// Well-known claims get readable names. It returns nil for non-JWT tokens.
func tokenClaims(token string, now time.Time) map[string]string {
	parsed, _ := jwt.Parse(token, nil)
	if parsed == nil {
		return nil
	}
	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}

	out := make(map[string]string, len(mapClaims))
	for k, v := range mapClaims {
		switch k {
		case "sub":
			out["SUBJECT"] = fmt.Sprint(v)
		case "exp", "iat", "nbf":
			label := map[string]string{"exp": "EXPIRES", "iat": "ISSUED", "nbf": "NOT BEFORE"}[k]
			if secs, ok := v.(float64); ok {
				t := time.Unix(int64(secs), 0)
				out[label] = t.Format(time.RFC3339)
				if k == "exp" && now.After(t) {
					out[label] += " (expired)"
				}
				continue
			}
			out[label] = fmt.Sprint(v)
		default:
			out[strings.ToUpper(strings.ReplaceAll(k, "_", " "))] = fmt.Sprint(v)
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
