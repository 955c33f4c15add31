/*
Package prompt collects the three answers that drive a run.

A Prompter asks, in order, for the shape count, the comma-separated list of
shape categories and the comma-separated canvas size. Every line is
sanitized before it is parsed.

	p := prompt.New(os.Stdin, os.Stdout, prompt.WithInteractive(true))
	req, err := p.ReadRequest(ctx)
*/
package prompt
