package steps

func providerStep(layout Layout, v view) Step {
	return Step{
		ID:     IDProvider,
		Target: layout.Provider,
		Edit:   renderEdit("provider.tmpl", v),
	}
}
