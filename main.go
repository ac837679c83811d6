// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/commando-cli/commando/cmd/commando"

func main() {
	cmd.Execute()
}
