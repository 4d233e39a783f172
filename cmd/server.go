/*
Copyright 2016 Jive Communications All rights reserved.

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
	"net"
	"net/http"

	"github.com/jive/cidrcalc/server"
	"github.com/spf13/cobra"
)

var listenAddr string

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start cidrcalc HTTP server",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		plog.Info("starting cidrcalc server")

		lis, err := net.Listen("tcp", listenAddr)
		if err != nil {
			plog.Fatalf("failed to start listener: %s", err)
		}
		defer lis.Close()

		plog.Infof("listening for client connections on [%s]", listenAddr)
		srv := server.NewServer()
		if err := http.Serve(lis, srv); err != nil {
			plog.Fatalf("server stopped: %s", err)
		}
	},
}

func init() {
	CidrcalcCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringVar(&listenAddr, "listen", "localhost:7543", "address to listen on")
}
