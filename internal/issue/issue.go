// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"maps"
	"slices"

	"github.com/charmbracelet/glamour"
)

type Id int

const (
	DescriptionNotFoundId Id = iota + 1
	MissingCommandNameId
	DescriptionParseErrorId
	ConfigLoadFailedId
	RendererFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // documentation pages about the issue
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n## See also:\n"
		for _, link := range i.docLinks {
			extraMd += "- <" + string(link) + ">\n"
		}
		for _, link := range i.extLinks {
			extraMd += "- <" + string(link) + ">\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	descriptionNotFoundIssue = &Issue{
		id: DescriptionNotFoundId,
		mdMsg: `
# No description found!

commando looks for a file named after the command, with a ` + "`.json`" + ` extension.

## Search locations (first match wins):
1. The file given with ` + "`--description`" + `
2. The directories listed in ` + "`$COMMANDO_PATH`" + `
3. ` + "`search_path`" + ` from your config file
4. ` + "`/usr/local/etc/commando`" + `, ` + "`/etc/commando`" + ` and ` + "`descriptions/`" + ` next to the binary

## Things you can try:
- See which descriptions are visible:
~~~
$ commando list
~~~

- Point commando at a directory of your own:
~~~
$ export COMMANDO_PATH=$HOME/.config/commando/descriptions
~~~`,
	}

	missingCommandNameIssue = &Issue{
		id: MissingCommandNameId,
		mdMsg: `
# Which command?

commando needs the name of a command, or a description file.

## Things you can try:
~~~
$ commando grep
$ commando --description ./grep.json
~~~

- Or link the binary under the command's name:
~~~
$ ln -s "$(command -v commando)" ~/bin/grep-form
~~~`,
	}

	descriptionParseErrorIssue = &Issue{
		id: DescriptionParseErrorId,
		mdMsg: `
# Failed to parse the description!

The file is not valid JSON, or it does not have the shape of a description.

## Example description:
~~~json
{
  "version": 1,
  "command": "grep",
  "options": [
    {"name": "-i", "title": "Ignore case", "type": "boolean", "default": "true"},
    {"title": "Pattern", "type": "text"}
  ]
}
~~~

Option types: ` + "`text`, `file`, `files`, `directory`, `directories`, `boolean`" + `.`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load the configuration!

## Things you can try:
- Check the CUE syntax of your config file
- Print the configuration commando would use:
~~~
$ commando config show
~~~
- Move the file away to fall back to the defaults`,
	}

	rendererFailedIssue = &Issue{
		id: RendererFailedId,
		mdMsg: `
# The form could not be shown!

## Things you can try:
- Run from an interactive terminal
- Use the line-oriented prompts instead:
~~~
$ commando --accessible grep
~~~`,
	}

	issues = map[Id]*Issue{
		descriptionNotFoundIssue.Id():   descriptionNotFoundIssue,
		missingCommandNameIssue.Id():    missingCommandNameIssue,
		descriptionParseErrorIssue.Id(): descriptionParseErrorIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
		rendererFailedIssue.Id():        rendererFailedIssue,
	}
)

func Values() []*Issue {
	return slices.Collect(maps.Values(issues))
}

func Get(id Id) *Issue {
	return issues[id]
}
