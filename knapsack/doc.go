/*
Package knapsack solves 0/1 knapsack problems by turning them into binary integer linear programs.

Describing a problem

An instance is usually read from a text stream whose first line is the capacity of the knapsack,
and whose next lines each describe an item with its id, its profit and its weight:

    50
    1 60 10
    2 100 20
    3 120 30

the programmer can create the Instance by doing:

    inst, err := knapsack.Parse(f)

Datasets made of a pallets CSV file (id,weight,profit) and a truck CSV file (capacity,pallets)
can be loaded with ParseCSV, and written back in the text format with WriteInstance.

Solving a problem

Formulate creates one binary variable per item, a single capacity constraint
and an objective maximizing the total profit. The model is then given to an ilp.Solver.
Solve runs the whole pipeline and returns the selected items:

    res, err := knapsack.Solve(inst, pbsolver.New())

Write outputs the selection, one "id profit weight" line per item,
with no newline after the last one.
*/
package knapsack
