// Package errors provides the structured errors used across the builder.
//
// An Error carries a Code (what went wrong), a Kind (which user action it
// interrupts), a message meant for the user, an optional cause and metadata.
//
// # Basic Usage
//
//	err := errors.NotFoundf("catalog %s not found", path).WithKind(errors.KindLoad)
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save session")
//	}
//
// Wrap keeps the code and kind of a wrapped Error, so the classification made
// at the lowest layer survives up to the UI shell.
//
// # Kinds
//
//   - KindLoad: the catalog could not be loaded. Fatal to the session.
//   - KindPersistence: a session file could not be read or written.
//   - KindExport: a sheet could not be written or rendered.
//   - KindNotice: informational, the operation was a no-op (duplicate
//     selection, nothing to export, missing hero name).
//
// # Error Checking
//
//	if errors.IsNotice(err) {
//	    showInfo(errors.GetMessage(err))
//	}
//	title := errors.GetTitle(err)
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("catalog.powers", cfg.Catalog.Powers, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
