/*
Package x contains the extensions of the core governance chain.

Extensions implement common functionality (Handler, Decorator,
Initializer, etc.) and are combined together in the app package
to construct the application.
*/
package x
