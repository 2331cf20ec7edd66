/*
Package arxml provides a high-level, ergonomic API for ARXML (AUTOSAR XML)
document access: loading, searching, attribute editing, and saving.

# Quick Start

Stamp a version attribute onto every module configuration and save:

	n, err := arxml.SetAttrByTag("ecu.arxml", "ECUC-MODULE-CONFIGURATION-VALUES", "version", "1.0", "output/ecu.arxml")

# Features

  - Explicit document context, no process-wide state
  - Exact-string tag and attribute matching, namespace form as stored
  - Restricted path queries with typed rejection of unsupported syntax
  - Batch attribute operations with affected-element counts
  - ISO-8859-1 output with declaration, atomic replace, parents created
  - Typed errors with stable categories
  - Substitutable capabilities for testing

# Basic Usage

Load, mutate, save:

	ctx := arxml.New()
	if err := ctx.Load("ecu.arxml"); err != nil {
	    log.Fatal(err)
	}
	n, err := ctx.AddByTag("ECUC-MODULE-CONFIGURATION-VALUES", "version", "1.0")
	if err != nil {
	    log.Fatal(err)
	}
	if err := ctx.SaveTo("output/ecu.arxml"); err != nil {
	    log.Fatal(err)
	}

Search without mutating:

	els, err := ctx.FindByPath("AR-PACKAGES/AR-PACKAGE")
	els, err = ctx.FindByAttr("UUID", "1fd95a51-2a41-4a77-9e0c-77c96f34f7e4")

# Error Handling

Every failure carries a stable category. Branch on kinds with errors.Is:

	if err := ctx.Load(path); err != nil {
	    switch {
	    case errors.Is(err, arxml.ErrNotFound):
	        // missing input
	    case errors.Is(err, arxml.ErrMalformed):
	        // unparsable content
	    }
	}

Batch edits report absence through counts, not errors: editing an attribute
that only some selected elements carry returns how many were modified.

# Concurrency

A Context is not safe for concurrent use. Use one context per goroutine, or
serialize access externally; independent contexts never share state.

# Testing Seams

Any capability can be swapped:

	ctx := arxml.NewWithParts(arxml.Parts{Store: fakeStore})
*/
package arxml
